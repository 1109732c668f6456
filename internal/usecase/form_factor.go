package usecase

import "strings"

type formFactor int

const (
	formUnknown formFactor = iota
	formMiniITX
	formMicroATX
	formATX
	formEATX
)

// normalizeFormFactor "mATX", "Micro-ATX", "MicroATX", "m-atx" -> formMicroATX
func normalizeFormFactor(raw string) formFactor {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
	switch s {
	case "atx":
		return formATX
	case "microatx", "matx", "µatx", "uatx":
		return formMicroATX
	case "miniitx", "itx", "mitx":
		return formMiniITX
	case "eatx", "extendedatx":
		return formEATX
	}
	return formUnknown
}

// supportedFormFactors case formFactor "ATX, Micro-ATX/Mini-ITX" -> set
func supportedFormFactors(raw string) map[formFactor]bool {
	out := make(map[formFactor]bool)
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '/' || r == '、' }) {
		if ff := normalizeFormFactor(token); ff != formUnknown {
			out[ff] = true
		}
	}
	return out
}

// caseFits a case listing a form factor also takes every smaller board.
// Unknown labels on either side count as a fit.
func caseFits(caseFormFactors string, boardFormFactor string) bool {
	board := normalizeFormFactor(boardFormFactor)
	if board == formUnknown {
		return true
	}
	supported := supportedFormFactors(caseFormFactors)
	if len(supported) == 0 {
		return true
	}
	for ff := range supported {
		if ff >= board {
			return true
		}
	}
	return false
}
