package records

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "productos", want: KindProduct},
		{in: "Categories", want: KindCategory},
		{in: " proveedores ", want: KindSupplier},
		{in: "orders", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKindResourceAndTitle(t *testing.T) {
	assert.Equal(t, []Kind{KindProduct, KindCategory, KindSupplier}, Kinds())
	assert.Equal(t, "categorias", KindCategory.Resource())
	assert.Equal(t, "Proveedores", KindSupplier.Title())
	assert.Equal(t, "productos", KindProduct.String())
}

func TestDateUnmarshal(t *testing.T) {
	var got struct {
		Stamp Date `json:"stamp"`
		Day   Date `json:"day"`
		Null  Date `json:"null"`
		Bad   Date `json:"bad"`
	}
	body := `{"stamp":"2024-03-01T10:30:00.000Z","day":"2024-03-05","null":null,"bad":"not a date"}`
	require.NoError(t, json.Unmarshal([]byte(body), &got))

	assert.True(t, got.Stamp.Valid)
	assert.Equal(t, 10, got.Stamp.Time.Hour())
	assert.False(t, got.Stamp.DateOnly)
	assert.True(t, got.Day.Valid)
	assert.True(t, got.Day.DateOnly)
	assert.Equal(t, time.March, got.Day.Time.Month())
	assert.Equal(t, 5, got.Day.Time.Day())
	assert.True(t, got.Null.IsNull())
	assert.False(t, got.Bad.Valid)
	assert.False(t, got.Bad.IsNull())
	assert.Equal(t, "not a date", got.Bad.Raw)
}

func TestDateUnmarshalRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDateMarshal(t *testing.T) {
	day := time.Date(2024, 7, 9, 15, 4, 5, 0, time.UTC)
	out, err := json.Marshal([]Date{NewDay(day), DayFrom(nil), NewDate(day)})
	require.NoError(t, err)
	assert.JSONEq(t, `["2024-07-09", null, "2024-07-09T15:04:05Z"]`, string(out))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Category{ID: 1, Name: "Bebidas"}.Validate())
	assert.Error(t, Category{Name: "Bebidas"}.Validate())
	assert.Error(t, Supplier{ID: 3}.Validate())
	assert.NoError(t, Product{ID: 2, Name: "Agua"}.Validate())
	assert.Error(t, Product{ID: 2}.Validate())
}
