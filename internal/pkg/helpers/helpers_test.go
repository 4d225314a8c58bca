package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		offset  string
		want    Page
		wantErr error
	}{
		{name: "defaults", want: Page{Limit: 5, Offset: 0}},
		{name: "explicit", limit: "5", offset: "0", want: Page{Limit: 5, Offset: 0}},
		{name: "max limit", limit: "20", offset: "40", want: Page{Limit: 20, Offset: 40}},
		{name: "limit too large", limit: "25", wantErr: ErrLimitTooLarge},
		{name: "zero limit", limit: "0", wantErr: ErrInvalidPagination},
		{name: "negative offset", offset: "-1", wantErr: ErrInvalidPagination},
		{name: "not a number", limit: "five", wantErr: ErrInvalidPagination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := ParseLimitOffset(tt.limit, tt.offset)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, apperrors.ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, page)
		})
	}
}

func TestParseIntList(t *testing.T) {
	values, ok := ParseIntList("1,2, 3", "[4]", "")
	require.True(t, ok)
	require.Equal(t, []int32{1, 2, 3, 4}, values)

	_, ok = ParseIntList("1,x")
	require.False(t, ok)

	_, ok = ParseIntList("-2")
	require.False(t, ok)
}

func TestParseDuration(t *testing.T) {
	require.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	require.Equal(t, time.Hour, ParseDuration("", time.Hour))
	require.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
}

func TestNullIfEmpty(t *testing.T) {
	require.Nil(t, NullIfEmpty("  "))
	require.Equal(t, "x", StringValue(NullIfEmpty("x")))
	require.Equal(t, "", StringValue(nil))
}
