package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestGenerateAlias_Format() {
	alias := GenerateAlias()

	parts := strings.Split(alias, ".")
	s.Len(parts, AliasWordCount)
	for _, part := range parts {
		s.NotEmpty(part)
		s.Equal(strings.ToLower(part), part, "alias words should be lowercase")
	}
}

func (s *GeneratorTestSuite) TestGenerateAlias_WordsFromVocabulary() {
	known := make(map[string]bool, len(aliasWords))
	for _, word := range aliasWords {
		known[word] = true
	}

	for i := 0; i < 100; i++ {
		for _, part := range strings.Split(GenerateAlias(), ".") {
			s.True(known[part], "alias word %q should come from the vocabulary", part)
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateAlias_Varies() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateAlias()] = true
	}

	s.Greater(len(seen), 1, "repeated draws should not all collide")
}

func (s *GeneratorTestSuite) TestGenerateCBU_Length() {
	for i := 0; i < 100; i++ {
		s.Len(GenerateCBU(), CBULength)
	}
}

func (s *GeneratorTestSuite) TestGenerateCBU_NumericOnly() {
	for i := 0; i < 100; i++ {
		cbu := GenerateCBU()
		for _, char := range cbu {
			s.True(char >= '0' && char <= '9', "CBU %q should contain only digits", cbu)
		}
	}
}

func (s *GeneratorTestSuite) TestGenerateCBU_Varies() {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateCBU()] = true
	}

	s.Greater(len(seen), 1, "repeated draws should not all collide")
}
