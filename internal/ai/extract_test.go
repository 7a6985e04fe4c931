package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractColors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"lines", "#0EA5E9 Sky\n#f59e0b Amber\n#E11D48 Rose", []string{"#0ea5e9", "#f59e0b", "#e11d48"}},
		{"dedupe", "#ffffff, #FFFFFF and #000000", []string{"#ffffff", "#000000"}},
		{"ignores short and long", "#fff #12345678 #abcdef", []string{"#abcdef"}},
		{"cap", "#000001 #000002 #000003 #000004 #000005 #000006", []string{"#000001", "#000002", "#000003", "#000004", "#000005"}},
		{"none", "I cannot help with that.", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractColors(tt.text))
		})
	}
}
