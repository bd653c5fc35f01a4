package taxonomy

// Built-in seed taxonomy, served whenever the persisted tables are absent
// and written back wholesale by a reset.

var defaultBusinessUnits = []string{"CFs", "CIB", "PBB"}

var defaultProducts = map[string][]string{
	"CFs": {"Business Enablers"},
	"CIB": {"Business Enabler", "Global Markets", "Investment Banking", "TPS"},
	"PBB": {"Transactional", "Lending", "VAF", "HL", "Card", "SBFC", "W&I", "Cash"},
}

var defaultEventTypes = map[string][]string{
	"CFs": {"DTPA", "EPWS", "EDPM - FIFC", "CPBP", "IF", "EDPM - TAX", "EF"},
	"CIB": {"BDSF", "IF", "CPBP", "EDPM", "EF"},
	"PBB": {"BDSF", "EDPM", "EF", "IF", "CPBP"},
}

// defaultValues resolves a lookup against one of the default maps: the
// unit's own list when known, otherwise the deduplicated union across all
// units (also the answer for an unfiltered lookup).
func defaultValues(m map[string][]string, businessUnit string) []string {
	if businessUnit != "" {
		if values, ok := m[businessUnit]; ok {
			return append([]string(nil), values...)
		}
	}

	var union []string
	seen := make(map[string]bool)
	for _, unit := range defaultBusinessUnits {
		for _, v := range m[unit] {
			if !seen[v] {
				seen[v] = true
				union = append(union, v)
			}
		}
	}

	return union
}
