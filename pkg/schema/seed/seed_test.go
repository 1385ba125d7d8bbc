package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblia-self-hosted-api/pkg/schema"
)

func tableByName(t *testing.T, name string) Table {
	t.Helper()
	for _, table := range Tables {
		if table.Name == name {
			return table
		}
	}
	t.Fatalf("no seed table named %s", name)
	return Table{}
}

func TestParseVerseRow(t *testing.T) {
	verses := tableByName(t, "verses")

	values, err := ParseRow(verses, "1|1|43|3|16|Porque Deus amou o mundo, de tal maneira...")
	require.NoError(t, err)

	require.Len(t, values, 6)
	assert.Equal(t, 1, values[0])
	assert.Equal(t, 43, values[2])
	assert.Equal(t, 3, values[3])
	assert.Equal(t, 16, values[4])
	// Text keeps embedded commas and colons intact
	assert.Equal(t, "Porque Deus amou o mundo, de tal maneira...", values[5])
}

func TestParseVersionRowWithBool(t *testing.T) {
	versions := tableByName(t, "versions")

	values, err := ParseRow(versions, "1|ARA|Almeida Revista e Atualizada|true")
	require.NoError(t, err)

	assert.Equal(t, 1, values[0])
	assert.Equal(t, "ARA", values[1])
	assert.Equal(t, true, values[3])
}

func TestParseRowWrongFieldCount(t *testing.T) {
	testaments := tableByName(t, "testaments")

	_, err := ParseRow(testaments, "1|Novo Testamento|extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 fields, got 3")
}

func TestParseRowMalformedInteger(t *testing.T) {
	verses := tableByName(t, "verses")

	_, err := ParseRow(verses, "1|1|43|three|16|texto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid integer")
	assert.Contains(t, err.Error(), "chapter")
}

func TestParseRowMalformedBool(t *testing.T) {
	versions := tableByName(t, "versions")

	_, err := ParseRow(versions, "1|ARA|Almeida|sim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid boolean")
}

func TestSeedTablesFollowDependencyOrder(t *testing.T) {
	// The seed load order must match the schema's foreign-key dependency
	// order exactly, table for table.
	require.Len(t, Tables, len(schema.TableOrder))
	for i, table := range Tables {
		assert.Equal(t, schema.TableOrder[i], table.Name)
	}
}

func TestSeedTablesKindsMatchColumns(t *testing.T) {
	for _, table := range Tables {
		assert.Len(t, table.Columns, len(table.Kinds), "table %s", table.Name)
	}
}
