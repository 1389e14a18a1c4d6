package workflow

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalPrompter_Confirm(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  bool
	}{
		"y is yes":          {input: "y\n", want: true},
		"yes is yes":        {input: "yes\n", want: true},
		"uppercase Y":       {input: "Y\n", want: true},
		"padded yes":        {input: "  yes  \n", want: true},
		"n is no":           {input: "n\n", want: false},
		"empty defaults no": {input: "\n", want: false},
		"anything else no":  {input: "sure\n", want: false},
		"closed stdin no":   {input: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			p := &TerminalPrompter{In: strings.NewReader(tt.input), Out: &out}

			got := p.Confirm("Stage all files?")

			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Stage all files? [y/N]")
		})
	}
}

func TestTerminalPrompter_AssumeYesSkipsPrompt(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := &TerminalPrompter{In: strings.NewReader(""), Out: &out, AssumeYes: true}

	assert.True(t, p.Confirm("Stage all files?"))
	assert.Empty(t, out.String(), "no prompt is printed when confirmations are skipped")
}
