// Package i18n exposes the two static UI label tables. This is not a
// translation engine: no interpolation, no pluralization, no fallback chaining.
package i18n

// DefaultLocale matches the panel's original startup language.
const DefaultLocale = "es"

var labels = map[string]map[string]string{
	"en": {
		"dashboard":     "Fair Dashboard",
		"createFair":    "Create New Fair",
		"town":          "Town / Location",
		"date":          "Date",
		"title":         "Title",
		"feasibility":   "Feasibility & Study",
		"activities":    "Activities Catalog",
		"materials":     "Materials DB",
		"marketing":     "Marketing & Strategy",
		"budget":        "Budget & Expenses",
		"entertainment": "Entertainment",
		"save":          "Save",
		"back":          "Back to Dashboard",
		"companies":     "Specialized Companies",
		"strategy":      "Strategy",
		"evidence":      "Evidence / Link",
		"implemented":   "Implemented",
		"report":        "Market Study Report",
		"viewFair":      "Manage Fair",
		"newActivity":   "Add Custom Activity",
		"newProvider":   "Add Provider",
		"estimated":     "Estimated",
		"actual":        "Actual",
		"status":        "Status",
	},
	"es": {
		"dashboard":     "Panel de Ferias",
		"createFair":    "Crear Nueva Feria",
		"town":          "Pueblo / Ubicación",
		"date":          "Fecha",
		"title":         "Título",
		"feasibility":   "Factibilidad y Estudio",
		"activities":    "Catálogo de Actividades",
		"materials":     "BD de Materiales",
		"marketing":     "Marketing y Estrategia",
		"budget":        "Presupuesto y Gastos",
		"entertainment": "Entretenimiento",
		"save":          "Guardar",
		"back":          "Volver al Panel",
		"companies":     "Empresas Especializadas",
		"strategy":      "Estrategia",
		"evidence":      "Evidencia / Link",
		"implemented":   "Implementado",
		"report":        "Reporte de Estudio de Mercado",
		"viewFair":      "Administrar Feria",
		"newActivity":   "Agregar Actividad Personalizada",
		"newProvider":   "Agregar Proveedor",
		"estimated":     "Estimado",
		"actual":        "Real",
		"status":        "Estado",
	},
}

// Labels returns the label table for a locale key, ok=false when unsupported.
func Labels(locale string) (map[string]string, bool) {
	table, ok := labels[locale]
	if !ok {
		return nil, false
	}

	// Copy out so callers cannot mutate the shared table.
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}

	return out, true
}

// Supported reports whether the locale key has a label table.
func Supported(locale string) bool {
	_, ok := labels[locale]
	return ok
}
