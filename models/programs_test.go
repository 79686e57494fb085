package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrograms(t *testing.T) {
	p := DefaultPrograms()

	assert.Equal(t, []string{"Games", "Tools", "Other"}, p.Categories())
	assert.Equal(t, 18, p.Len())
	for _, e := range p.All() {
		assert.False(t, e.Configured(), "%s/%s should start unconfigured", e.Category, e.Program)
	}

	path, ok := p.Path("Tools", "rkvMT")
	assert.True(t, ok)
	assert.Empty(t, path)

	games := p.Entries("Games")
	require.Len(t, games, 6)
	assert.Equal(t, "Any%", games[0].Program)
	assert.Equal(t, "100%PM", games[5].Program)
}

func TestSetPathTouchesOnlyOneEntry(t *testing.T) {
	p := DefaultPrograms()
	before := p.Clone()

	ok := p.SetPath("Other", "OBS", `C:\OBS\obs64.exe`)
	require.True(t, ok)

	path, _ := p.Path("Other", "OBS")
	assert.Equal(t, `C:\OBS\obs64.exe`, path)

	for _, e := range p.All() {
		if e.Category == "Other" && e.Program == "OBS" {
			continue
		}
		old, _ := before.Path(e.Category, e.Program)
		assert.Equal(t, old, e.Path)
	}
}

func TestSetPathUnknownKeys(t *testing.T) {
	p := DefaultPrograms()

	assert.False(t, p.SetPath("Missing", "OBS", "x"))
	assert.False(t, p.SetPath("Other", "Missing", "x"))
	assert.Equal(t, 18, p.Len())

	_, ok := p.Path("Missing", "OBS")
	assert.False(t, ok)
	assert.Nil(t, p.Entries("Missing"))
}

func TestAddKeepsOrder(t *testing.T) {
	p := NewPrograms()
	p.Add("b", "z", "")
	p.Add("a", "y", "1")
	p.Add("b", "x", "2")
	p.Add("b", "z", "3")

	assert.Equal(t, []string{"b", "a"}, p.Categories())
	assert.Equal(t, []ProgramEntry{
		{Category: "b", Program: "z", Path: "3"},
		{Category: "b", Program: "x", Path: "2"},
	}, p.Entries("b"))
}

func TestCloneIsIndependent(t *testing.T) {
	p := DefaultPrograms()
	p.AddCategory("")
	c := p.Clone()

	c.SetPath("Games", "51TE", "/games/51te")
	path, _ := p.Path("Games", "51TE")
	assert.Empty(t, path)
	assert.Equal(t, p.Categories(), c.Categories())
}

func TestJSONKeepsOrder(t *testing.T) {
	p := NewPrograms()
	p.Add("Zeta", "b", `C:\b.exe`)
	p.Add("Zeta", "a", "")
	p.Add("Alpha", "Any%", "/x/\"quoted\"")
	p.AddCategory("")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":{"b":"C:\\b.exe","a":""},"Alpha":{"Any%":"/x/\"quoted\""},"":{}}`, string(data))

	var decoded Programs
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p.Categories(), decoded.Categories())
	assert.Equal(t, p.All(), decoded.All())
}

func TestUnmarshalLenientValues(t *testing.T) {
	var p Programs
	require.NoError(t, json.Unmarshal([]byte(`{"Games":{"a":null,"b":12}}`), &p))

	a, _ := p.Path("Games", "a")
	b, _ := p.Path("Games", "b")
	assert.Equal(t, "", a)
	assert.Equal(t, "12", b)
}

func TestUnmarshalRejectsWrongShape(t *testing.T) {
	cases := map[string]string{
		"array root":      `["Games"]`,
		"string category": `{"Games":"oops"}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var p Programs
			assert.Error(t, json.Unmarshal([]byte(input), &p))
		})
	}
}
