// Package generator produces the identifiers assigned to an account at
// creation: a human-pronounceable alias and a 22-digit CBU. Generation is
// pure randomness with no failure mode; uniqueness against existing accounts
// is the caller's responsibility.
package generator

import (
	"math/rand"
	"strings"
)

// AliasWordCount is the number of words joined into an alias.
const AliasWordCount = 3

// aliasWords is the vocabulary aliases are drawn from. Words are short,
// lowercase, and unambiguous when read aloud.
var aliasWords = []string{
	"lago", "rio", "monte", "valle", "cielo", "nube", "luna", "sol",
	"verde", "azul", "rojo", "oro", "plata", "perla", "coral", "jade",
	"pino", "roble", "cedro", "sauce", "olivo", "trigo", "lirio", "rosa",
	"puma", "zorro", "lobo", "ciervo", "halcon", "condor", "tigre", "delfin",
	"norte", "sur", "este", "oeste", "cumbre", "costa", "isla", "puerto",
	"viento", "lluvia", "nieve", "brisa", "marea", "estrella", "aurora", "fuego",
}

// GenerateAlias returns a fresh alias of the form "word.word.word".
func GenerateAlias() string {
	words := make([]string, AliasWordCount)
	for i := range words {
		words[i] = aliasWords[rand.Intn(len(aliasWords))]
	}
	return strings.Join(words, ".")
}
