package errctx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MatchesDirectConstruction(t *testing.T) {
	t.Parallel()

	base := errors.New("connection refused")

	cases := []struct {
		name   string
		got    any
		direct any
	}{
		{
			name:   "value receiver",
			got:    Convert[loadError](New(base, "/etc/app.yaml")),
			direct: loadError{}.FromErrorAndContext(base, "/etc/app.yaml"),
		},
		{
			name:   "string error",
			got:    Convert[stringContextError](New("file not found", "loading config")),
			direct: stringContextError{}.FromErrorAndContext("file not found", "loading config"),
		},
		{
			name:   "tuple-like struct",
			got:    Convert[retryError](New(ioNotFound, uint32(3))),
			direct: retryError{}.FromErrorAndContext(ioNotFound, 3),
		},
		{
			name:   "carrier identity",
			got:    Convert[Carrier[error, string]](New(base, "dial")),
			direct: New(base, "dial"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.direct, tc.got)
		})
	}
}

func TestConvert_NilSafePointerReceiver(t *testing.T) {
	t.Parallel()

	base := errors.New("timeout")
	got := Convert[*ptrError](New(base, "dial"))

	require.NotNil(t, got)
	assert.Equal(t, "dial", got.Op)
	assert.ErrorIs(t, got, base)
}

func TestConvertFunc_SelectsBuilderPerContextShape(t *testing.T) {
	t.Parallel()

	base := errors.New("constraint violated")

	byTable := ConvertFunc(New(base, "users"), queryByTable)
	assert.Equal(t, queryError{Table: "users", Err: base}, byTable)
	assert.Equal(t, "table users: constraint violated", byTable.Error())

	byRow := ConvertFunc(New(base, 17), queryByRow)
	assert.Equal(t, queryError{Row: 17, Err: base}, byRow)
	assert.Equal(t, "row 17: constraint violated", byRow.Error())
}

func TestBuilderOf_AgreesWithMethod(t *testing.T) {
	t.Parallel()

	b := BuilderOf[retryError, ioError, uint32]()
	assert.Equal(t, retryError{Err: ioPermission, Attempts: 5}, b(ioPermission, 5))

	viaFunc := ConvertFunc(New(ioPermission, uint32(5)), b)
	viaMethod := Convert[retryError](New(ioPermission, uint32(5)))
	assert.Equal(t, viaMethod, viaFunc)
}
