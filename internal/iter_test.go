package internal

import (
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(maps.All(map[string]int{"a": 1}), maps.All(map[string]int{"b": 2}))
	assert.Equal(map[string]int{"a": 1, "b": 2}, maps.Collect(seq))
}

func TestIterSeq2Map(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Map(maps.All(map[string]string{"pc": "pc", "mar": "mar"}), strings.ToUpper)
	assert.Equal(map[string]string{"pc": "PC", "mar": "MAR"}, maps.Collect(seq))
}
