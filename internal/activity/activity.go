// Package activity holds the fixed activity catalog and the defect
// type codes recognised by the PSP recording process.
package activity

import "slices"

// Catalog is the fixed, ordered set of activities that can be timed.
// It is referenced by name everywhere and is not persisted as data.
var Catalog = []string{
	"Analizar",
	"Planificar",
	"Codificar",
	"Testear",
	"Evaluación del código",
	"Revisión del código",
	"Lanzamiento",
	"Diagramar",
	"Reunión",
}

// InCatalog reports whether name is one of the catalog activities.
func InCatalog(name string) bool {
	return slices.Contains(Catalog, name)
}

// DefectTypes maps the ten recognised PSP defect type codes to their
// labels. Codes outside this set are rejected at entry time.
var DefectTypes = map[int]string{
	10:  "Documentación",
	20:  "Sintaxis",
	30:  "Construcción",
	40:  "Asignación",
	50:  "Interfaz",
	60:  "Chequeo",
	70:  "Datos",
	80:  "Función",
	90:  "Sistema",
	100: "Ambiente",
}

// DefectTypeCodes returns the type codes in ascending order.
func DefectTypeCodes() []int {
	codes := make([]int, 0, len(DefectTypes))
	for code := range DefectTypes {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}

// ValidDefectType reports whether code is a recognised defect type.
func ValidDefectType(code int) bool {
	_, ok := DefectTypes[code]
	return ok
}
