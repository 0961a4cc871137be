package models_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regup-org/regup/internal/domain"
	"github.com/regup-org/regup/internal/domain/models"
)

func mustParse(t *testing.T, data string) models.NetworkAddresses {
	t.Helper()
	var na models.NetworkAddresses
	require.NoError(t, json.Unmarshal([]byte(data), &na))
	return na
}

func keys(na models.NetworkAddresses) []string {
	out := make([]string, len(na))
	for i, entry := range na {
		out[i] = entry.ChainID
	}
	return out
}

func TestAddChain_NewChain(t *testing.T) {
	na := mustParse(t, `{"1": "canonical", "10": "canonical"}`)

	updated, changed, err := na.AddChain("988", models.VariantEIP155)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"1", "10", "988"}, keys(updated))

	entry, ok := updated.Get("988")
	require.True(t, ok)
	tag, single := entry.Single()
	assert.True(t, single)
	assert.Equal(t, models.VariantEIP155, tag)
}

func TestAddChain_InsertionPosition(t *testing.T) {
	tests := []struct {
		name    string
		chainID string
		want    []string
	}{
		{"smaller than all keys goes first", "1", []string{"1", "5", "10", "100"}},
		{"between keys", "42", []string{"5", "10", "42", "100"}},
		{"larger than all keys goes last", "999", []string{"5", "10", "100", "999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			na := mustParse(t, `{"5": "canonical", "10": "canonical", "100": "canonical"}`)
			updated, changed, err := na.AddChain(tt.chainID, models.VariantCanonical)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tt.want, keys(updated))
		})
	}
}

func TestAddChain_NumericNotLexicographicOrder(t *testing.T) {
	na := mustParse(t, `{"1": "canonical", "10": "canonical"}`)

	// "2" sorts after "10" numerically even though it sorts before it
	// lexicographically
	updated, _, err := na.AddChain("2", models.VariantCanonical)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "10"}, keys(updated))
}

func TestAddChain_RebuildsOutOfOrderInput(t *testing.T) {
	na := mustParse(t, `{"100": "canonical", "1": "canonical", "10": "eip155"}`)

	updated, changed, err := na.AddChain("56", models.VariantCanonical)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"1", "10", "56", "100"}, keys(updated))
}

func TestAddChain_ExistingScalarSameVariant(t *testing.T) {
	na := mustParse(t, `{"1": "canonical"}`)

	updated, changed, err := na.AddChain("1", models.VariantCanonical)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, na, updated)
}

func TestAddChain_ExistingScalarDifferentVariant(t *testing.T) {
	na := mustParse(t, `{"1": "canonical"}`)

	updated, changed, err := na.AddChain("1", models.VariantEIP155)
	require.NoError(t, err)
	assert.True(t, changed)

	entry, ok := updated.Get("1")
	require.True(t, ok)
	assert.Equal(t, []models.Variant{models.VariantCanonical, models.VariantEIP155}, entry.Tags())

	// serializes as an array in [existing, new] order
	data, err := json.Marshal(updated)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": ["canonical", "eip155"]}`, string(data))
}

func TestAddChain_ExistingSetNewVariant(t *testing.T) {
	na := mustParse(t, `{"1": ["canonical", "eip155"]}`)

	updated, changed, err := na.AddChain("1", models.VariantZkSync)
	require.NoError(t, err)
	assert.True(t, changed)

	entry, _ := updated.Get("1")
	assert.Equal(t, []models.Variant{models.VariantCanonical, models.VariantEIP155, models.VariantZkSync}, entry.Tags())
}

func TestAddChain_ExistingSetDuplicateVariant(t *testing.T) {
	na := mustParse(t, `{"1": ["canonical", "eip155"]}`)

	updated, changed, err := na.AddChain("1", models.VariantCanonical)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, na, updated)
}

func TestAddChain_ExistingKeyKeepsPosition(t *testing.T) {
	// stored out of order: merging into an existing key must not reorder
	na := mustParse(t, `{"100": "canonical", "1": "canonical"}`)

	updated, changed, err := na.AddChain("1", models.VariantEIP155)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"100", "1"}, keys(updated))
}

func TestAddChain_InvalidChainID(t *testing.T) {
	na := mustParse(t, `{"1": "canonical"}`)

	for _, bad := range []string{"", "abc", "-5", "1.5", "0x10", "1e3", "+7"} {
		t.Run(strconv.Quote(bad), func(t *testing.T) {
			_, _, err := na.AddChain(bad, models.VariantCanonical)
			assert.ErrorIs(t, err, domain.ErrInvalidChainID)
		})
	}
}

func TestAddChain_Idempotence(t *testing.T) {
	na := mustParse(t, `{"1": "canonical", "137": ["canonical", "eip155"]}`)

	once, changed, err := na.AddChain("56", models.VariantEIP155)
	require.NoError(t, err)
	require.True(t, changed)

	twice, changed, err := once.AddChain("56", models.VariantEIP155)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestAddChain_OrderingInvariant(t *testing.T) {
	na := mustParse(t, `{"42161": "canonical", "1": "canonical", "8453": "eip155", "10": "canonical"}`)

	updated, _, err := na.AddChain("137", models.VariantCanonical)
	require.NoError(t, err)

	var prev uint64
	for i, key := range keys(updated) {
		id, err := strconv.ParseUint(key, 10, 64)
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, id, prev, "keys must be strictly ascending")
		}
		prev = id
	}
}

func TestNetworkAddresses_RoundTripPreservesOrder(t *testing.T) {
	in := `{"100":"canonical","1":"canonical","10":["canonical","eip155"]}`
	na := mustParse(t, in)

	out, err := json.Marshal(na)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestNetworkAddresses_UnmarshalRejectsNonObject(t *testing.T) {
	var na models.NetworkAddresses
	assert.Error(t, json.Unmarshal([]byte(`["1"]`), &na))
}

func TestParseChainID(t *testing.T) {
	id, err := models.ParseChainID("988")
	require.NoError(t, err)
	assert.Equal(t, uint64(988), id)

	_, err = models.ParseChainID("mainnet")
	assert.ErrorIs(t, err, domain.ErrInvalidChainID)
}
