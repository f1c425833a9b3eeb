package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	require.Equal(t, "0.00", Money(0).String())
	require.Equal(t, "0.05", Money(5).String())
	require.Equal(t, "49.99", Money(4999).String())
	require.Equal(t, "90.00", Dollars(90, 0).String())
	require.Equal(t, "-1.05", Money(-105).String())
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"89.98", 8998},
		{"90", 9000},
		{"90.5", 9050},
		{".99", 99},
		{"119.97", 11997},
		{"0.005", 1},
		{"0.004", 0},
		{"-19.99", -1999},
		{" 29.99 ", 2999},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "1.2.3", "1e3", "$5", "-", "+", ".", "-.", " . ", "92233720368547758.07", "99999999999999999999"} {
		_, err := ParseMoney(bad)
		require.Error(t, err, bad)
	}
}

func TestMoney_JSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Cost Money `json:"cost"`
	}{Cost: 8998})
	require.NoError(t, err)
	require.JSONEq(t, `{"cost":89.98}`, string(out))

	var in struct {
		Cost  Money `json:"cost"`
		Quote Money `json:"quote"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"cost":119.97,"quote":"49.99"}`), &in))
	require.Equal(t, Money(11997), in.Cost)
	require.Equal(t, Money(4999), in.Quote)

	var round struct {
		Cost Money `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(out, &round))
	require.Equal(t, Money(8998), round.Cost)

	kept := Money(500)
	require.NoError(t, json.Unmarshal([]byte(`null`), &kept))
	require.Equal(t, Money(500), kept)
	require.Error(t, json.Unmarshal([]byte(`"-."`), &kept))
}
