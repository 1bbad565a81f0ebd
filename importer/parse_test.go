package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoster(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Player
	}{
		{
			name:  "name with comma and trailing stats",
			input: "Smith, John  1850 3 2\n",
			want:  []Player{{Name: "Smith, John", Rating: 1850}},
		},
		{
			name:  "trailing scores after semicolon are ignored",
			input: "Jallow, Fatou 1620 2 16 5 11; 420 389 455\n",
			want:  []Player{{Name: "Jallow, Fatou", Rating: 1620}},
		},
		{
			name:  "blank lines and comments skipped",
			input: "\n# roster exported by tsh\nCeesay, Ousman 1433\n\n",
			want:  []Player{{Name: "Ceesay, Ousman", Rating: 1433}},
		},
		{
			name:  "line without rating skipped",
			input: "just a name with no numbers\nTouray, Lamin 905\n",
			want:  []Player{{Name: "Touray, Lamin", Rating: 905}},
		},
		{
			name:  "unrated player keeps zero rating",
			input: "Njie, Adama 0\n",
			want:  []Player{{Name: "Njie, Adama", Rating: 0}},
		},
		{
			name:  "file order preserved",
			input: "Bojang, Isatou 1700\nSanyang, Modou 1500\n",
			want: []Player{
				{Name: "Bojang, Isatou", Rating: 1700},
				{Name: "Sanyang, Modou", Rating: 1500},
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  []Player{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players, err := ParseRoster(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, players)
		})
	}
}

func TestParseConfig(t *testing.T) {
	input := `# TSH event configuration
config event_name = "GSF Nationals 2025"
config max_rounds = 7
config director = 'E. Saye'  # the TD
config assistant=unquoted value
division A a.t
not a config line at all
`
	cfg, err := ParseConfig(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "GSF Nationals 2025", cfg["event_name"])
	assert.Equal(t, "7", cfg["max_rounds"])
	assert.Equal(t, "E. Saye", cfg["director"])
	assert.Equal(t, "unquoted value", cfg["assistant"])
	assert.NotContains(t, cfg, "division")
	assert.Len(t, cfg, 4)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cfg)
}
