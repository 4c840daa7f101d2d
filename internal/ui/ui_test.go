package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelStringAlignsBorders(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	out := PanelString([]string{"ab", "abcd"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| ab   |", lines[1])
	assert.Equal(t, "| abcd |", lines[2])
	assert.Equal(t, "+------+", lines[3])
}

func TestListLines(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	lines := ListLines([]string{"buy milk", strings.Repeat("x", 100)})
	require.Len(t, lines, 4)
	assert.Equal(t, "Todos  Total 2", lines[0])
	assert.Equal(t, " 1. - buy milk", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "..."))

	empty := ListLines(nil)
	assert.Equal(t, "no items", empty[len(empty)-1])
}

func TestEveryThemeNameIsBuiltIn(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("classic")
	classicTheme := Current()
	for _, name := range ThemeNames {
		SetTheme(name)
		if name == "classic" {
			assert.Equal(t, classicTheme, Current())
			continue
		}
		assert.NotEqual(t, classicTheme, Current(), name)
	}
}

func TestColorOnlyOnTTYOrForced(t *testing.T) {
	SetTheme("classic")
	var out bytes.Buffer
	SetOutput(&out, &out)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr); SetColorForcing(false, false) })

	assert.Equal(t, "plain", C(fgRed, "plain"))
	SetColorForcing(true, false)
	assert.Equal(t, fgRed+"plain"+reset, C(fgRed, "plain"))
	SetColorForcing(true, true)
	assert.Equal(t, "plain", C(fgRed, "plain"))
}

func TestOKAndFailWriters(t *testing.T) {
	SetTheme("mono")
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(os.Stdout, os.Stderr); SetTheme("classic") })

	OK("added")
	Fail("nope")
	assert.Equal(t, "ok: added\n", out.String())
	assert.Equal(t, "error: nope\n", errOut.String())
}
