package toml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type layoutDoc struct {
	Floors   int        `toml:"floors"`
	Grid     [2]int     `toml:"grid"`
	CellSize [3]float64 `toml:"cell_size"`
	Seed     *int64     `toml:"seed"`
}

type floorDoc struct {
	Rows []string `toml:"rows"`
}

type houseDoc struct {
	Name   string     `toml:"name"`
	Layout layoutDoc  `toml:"layout"`
	Roof   roofDoc    `toml:"roof"`
	Floor  []floorDoc `toml:"floor"`
	Skip   string     `toml:"-"`
}

type roofDoc struct {
	Strategy string  `toml:"strategy"`
	Pitch    float64 `toml:"pitch"`
	Ridge    bool    `toml:"ridge_cap"`
}

const sample = `
name = "cottage" # trailing comment

[layout]
floors = 2
grid = [10, 8]
cell_size = [1, 1.5, 1]
seed = 1_000

[roof]
strategy = 'greedy'
pitch = 0.5
ridge_cap = true

[[floor]]
rows = [
  "####",
  "#..#",
]

[[floor]]
rows = ["##"]
`

func TestParseValues(t *testing.T) {
	m, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "cottage", m["name"])
	layout := m["layout"].(map[string]any)
	assert.Equal(t, int64(2), layout["floors"])
	assert.Equal(t, []any{int64(10), int64(8)}, layout["grid"])
	assert.Equal(t, int64(1000), layout["seed"])

	floors, ok := m["floor"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, floors, 2)
	assert.Equal(t, []any{"####", "#..#"}, floors[0]["rows"])
}

func TestParseScalars(t *testing.T) {
	m, err := Parse([]byte(`
hex = 0x1F
oct = 0o17
bin = 0b101
neg = -12
exp = 2.5e3
esc = "a\tb\u0041\"q\""
lit = 'C:\path'
inline = { a = 1, b.c = "x" }
dotted.key = true
empty = []
`))
	require.NoError(t, err)
	assert.Equal(t, int64(31), m["hex"])
	assert.Equal(t, int64(15), m["oct"])
	assert.Equal(t, int64(5), m["bin"])
	assert.Equal(t, int64(-12), m["neg"])
	assert.Equal(t, 2500.0, m["exp"])
	assert.Equal(t, "a\tbA\"q\"", m["esc"])
	assert.Equal(t, `C:\path`, m["lit"])
	assert.Equal(t, map[string]any{"a": int64(1), "b": map[string]any{"c": "x"}}, m["inline"])
	assert.Equal(t, map[string]any{"key": true}, m["dotted"])
	assert.Equal(t, []any{}, m["empty"])
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"duplicate key":   "a = 1\na = 2",
		"table twice":     "[a]\n[a]",
		"missing value":   "a =",
		"unterminated":    `a = "abc`,
		"leading zero":    "a = 012",
		"two per line":    "a = 1 b = 2",
		"not a table":     "a = 1\n[a.b]",
		"array no comma":  "a = [1 2]",
		"bad escape":      `a = "\q"`,
		"stray character": "a = @",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			require.Error(t, err)
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("a = 1\n\nb = ?"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Pos.Line)
	assert.Equal(t, 5, pe.Pos.Col)
}

func TestUnmarshal(t *testing.T) {
	var doc houseDoc
	require.NoError(t, UnmarshalStrict([]byte(sample), &doc))

	assert.Equal(t, "cottage", doc.Name)
	assert.Equal(t, 2, doc.Layout.Floors)
	assert.Equal(t, [2]int{10, 8}, doc.Layout.Grid)
	assert.Equal(t, [3]float64{1, 1.5, 1}, doc.Layout.CellSize)
	require.NotNil(t, doc.Layout.Seed)
	assert.Equal(t, int64(1000), *doc.Layout.Seed)
	assert.Equal(t, roofDoc{Strategy: "greedy", Pitch: 0.5, Ridge: true}, doc.Roof)
	require.Len(t, doc.Floor, 2)
	assert.Equal(t, []string{"##"}, doc.Floor[1].Rows)
}

func TestDecodeStrictUnknownKey(t *testing.T) {
	src := "[roof]\npitch = 0.5\npitchh = 1\n\n[extra]\nx = 1"
	var doc houseDoc
	require.NoError(t, Unmarshal([]byte(src), &doc))

	err := UnmarshalStrict([]byte(src), &doc)
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "extra")

	err = UnmarshalStrict([]byte("[roof]\npitchh = 1"), &doc)
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "roof.pitchh")
}

func TestDecodeTypeErrors(t *testing.T) {
	var doc houseDoc
	err := Unmarshal([]byte("[layout]\ngrid = [1, 2, 3]"), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.grid")

	err = Unmarshal([]byte("[layout]\nfloors = \"two\""), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.floors")

	var small struct {
		N int8 `toml:"n"`
	}
	require.Error(t, Unmarshal([]byte("n = 300"), &small))
	require.Error(t, Unmarshal([]byte("n = 1"), small))
}

func TestMarshalRoundTrip(t *testing.T) {
	seed := int64(7)
	in := houseDoc{
		Name:   "tab\t\"q\"",
		Layout: layoutDoc{Floors: 3, Grid: [2]int{12, 9}, CellSize: [3]float64{1, 2, 0.5}, Seed: &seed},
		Roof:   roofDoc{Strategy: "largest", Pitch: 1, Ridge: false},
		Floor:  []floorDoc{{Rows: []string{"#W#", "#D#"}}, {Rows: []string{"#"}}},
		Skip:   "never written",
	}
	out, err := Marshal(&in)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "never written")
	assert.Contains(t, string(out), "\n[layout]\n")
	assert.Contains(t, string(out), "\n[[floor]]\n")
	assert.Contains(t, string(out), "pitch = 1.0\n")

	var back houseDoc
	require.NoError(t, UnmarshalStrict(out, &back))
	back.Skip = in.Skip
	assert.Equal(t, in, back)
}

func TestMarshalOrderAndSpecials(t *testing.T) {
	type doc struct {
		Z   int                `toml:"z"`
		A   float64            `toml:"a"`
		Map map[string]float64 `toml:"map"`
		Opt string             `toml:"opt,omitempty"`
	}
	out, err := Marshal(doc{Z: 1, A: math.Inf(-1), Map: map[string]float64{"b.c": 2, "a": 1}})
	require.NoError(t, err)
	assert.Equal(t, "z = 1\na = -inf\n\n[map]\na = 1.0\n\"b.c\" = 2.0\n", string(out))

	_, err = Marshal(42)
	assert.Error(t, err)
}
