package reference

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// canonicalBooks maps each book's canonical abbreviation to the full
// Portuguese names it is known by. Abbreviations and names are both
// accepted in references, case-insensitively and with or without accents.
var canonicalBooks = []struct {
	Abbrev string
	Names  []string
}{
	{"Gn", []string{"Gênesis"}},
	{"Ex", []string{"Êxodo"}},
	{"Lv", []string{"Levítico"}},
	{"Nm", []string{"Números"}},
	{"Dt", []string{"Deuteronômio"}},
	{"Js", []string{"Josué"}},
	{"Jz", []string{"Juízes"}},
	{"Rt", []string{"Rute"}},
	{"1Sm", []string{"1 Samuel"}},
	{"2Sm", []string{"2 Samuel"}},
	{"1Rs", []string{"1 Reis"}},
	{"2Rs", []string{"2 Reis"}},
	{"1Cr", []string{"1 Crônicas"}},
	{"2Cr", []string{"2 Crônicas"}},
	{"Ed", []string{"Esdras"}},
	{"Ne", []string{"Neemias"}},
	{"Et", []string{"Ester"}},
	{"Jó", []string{"Jó"}},
	{"Sl", []string{"Salmos"}},
	{"Pv", []string{"Provérbios"}},
	{"Ec", []string{"Eclesiastes"}},
	{"Ct", []string{"Cânticos", "Cântico dos Cânticos"}},
	{"Is", []string{"Isaías"}},
	{"Jr", []string{"Jeremias"}},
	{"Lm", []string{"Lamentações", "Lamentações de Jeremias"}},
	{"Ez", []string{"Ezequiel"}},
	{"Dn", []string{"Daniel"}},
	{"Os", []string{"Oséias"}},
	{"Jl", []string{"Joel"}},
	{"Am", []string{"Amós"}},
	{"Ob", []string{"Obadias"}},
	{"Jn", []string{"Jonas"}},
	{"Mq", []string{"Miquéias"}},
	{"Na", []string{"Naum"}},
	{"Hc", []string{"Habacuque"}},
	{"Sf", []string{"Sofonias"}},
	{"Ag", []string{"Ageu"}},
	{"Zc", []string{"Zacarias"}},
	{"Ml", []string{"Malaquias"}},
	{"Mt", []string{"Mateus"}},
	{"Mc", []string{"Marcos"}},
	{"Lc", []string{"Lucas"}},
	{"Jo", []string{"João"}},
	{"At", []string{"Atos", "Atos dos Apóstolos"}},
	{"Rm", []string{"Romanos"}},
	{"1Co", []string{"1 Coríntios"}},
	{"2Co", []string{"2 Coríntios"}},
	{"Gl", []string{"Gálatas"}},
	{"Ef", []string{"Efésios"}},
	{"Fp", []string{"Filipenses"}},
	{"Cl", []string{"Colossenses"}},
	{"1Ts", []string{"1 Tessalonicenses"}},
	{"2Ts", []string{"2 Tessalonicenses"}},
	{"1Tm", []string{"1 Timóteo"}},
	{"2Tm", []string{"2 Timóteo"}},
	{"Tt", []string{"Tito"}},
	{"Fm", []string{"Filemom"}},
	{"Hb", []string{"Hebreus"}},
	{"Tg", []string{"Tiago"}},
	{"1Pe", []string{"1 Pedro"}},
	{"2Pe", []string{"2 Pedro"}},
	{"1Jo", []string{"1 João"}},
	{"2Jo", []string{"2 João"}},
	{"3Jo", []string{"3 João"}},
	{"Jd", []string{"Judas"}},
	{"Ap", []string{"Apocalipse"}},
}

// accentFolder strips combining diacritical marks ("Gênesis" -> "Genesis")
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return folded
}

// bookAliases maps lowercased abbreviations and full names, with and
// without accents, to the canonical abbreviation.
var bookAliases = buildBookAliases()

func buildBookAliases() map[string]string {
	aliases := make(map[string]string)

	// Exact lowercased keys first: they must win over accent-stripped
	// collisions ("Jó" folds to "jo", which already names João's abbrev).
	for _, b := range canonicalBooks {
		aliases[strings.ToLower(b.Abbrev)] = b.Abbrev
		for _, name := range b.Names {
			aliases[strings.ToLower(name)] = b.Abbrev
		}
	}
	for _, b := range canonicalBooks {
		for _, key := range append([]string{b.Abbrev}, b.Names...) {
			folded := stripAccents(strings.ToLower(key))
			if _, ok := aliases[folded]; !ok {
				aliases[folded] = b.Abbrev
			}
		}
	}
	return aliases
}

// NormalizeBook resolves a book token to its canonical abbreviation:
// "João" -> "Jo", "I Coríntios" -> "1Co", "jo" -> "Jo". Roman numeral
// prefixes are read as book ordinals. Unknown tokens pass through
// unchanged and fail the lookup as a not-found, not a parse error.
func NormalizeBook(token string) string {
	fields := strings.Fields(strings.ToLower(token))
	if len(fields) > 1 {
		switch fields[0] {
		case "i":
			fields[0] = "1"
		case "ii":
			fields[0] = "2"
		case "iii":
			fields[0] = "3"
		}
	}
	key := strings.Join(fields, " ")

	if abbrev, ok := bookAliases[key]; ok {
		return abbrev
	}
	if abbrev, ok := bookAliases[stripAccents(key)]; ok {
		return abbrev
	}
	return token
}
