package entry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirspot/resume/pkg/log"
)

func str(s string) *string { return &s }

func TestPoolAppendValidation(t *testing.T) {
	tests := []struct {
		name  string
		text  *string
		start *string
		end   *string
		want  State
		err   error
	}{
		{"text only", str("wrote things"), nil, nil, StateOK, nil},
		{"start only", str("ongoing"), str("2020-01-01"), nil, StateOK, nil},
		{"start and end", str("done"), str("2020-01-01"), str("2021-06-30"), StateOK, nil},
		{"empty dates are absent", str("undated"), str(""), str(""), StateOK, nil},
		{"missing text", nil, nil, nil, StateTextMissing, ErrTextMissing},
		{"empty text", str(""), nil, nil, StateTextEmpty, ErrTextEmpty},
		{"bad start", str("x"), str("2020-13-01"), nil, StateStartDate, ErrStartDate},
		{"bad end", str("x"), str("2020-01-01"), str("2021-02-29"), StateEndDate, ErrEndDate},
		{"end without start", str("x"), nil, str("2020-01-01"), StateStartDateMissing, ErrStartDateMissing},
		{"empty start with end", str("x"), str(""), str("2020-01-01"), StateStartDateMissing, ErrStartDateMissing},
		{"text checked before dates", str(""), str("nope"), nil, StateTextEmpty, ErrTextEmpty},
		{"start checked before missing start", str("x"), str("bad"), str("bad"), StateStartDate, ErrStartDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(4)
			e, err := p.Append(tt.text, tt.start, tt.end)
			require.Equal(t, tt.want, p.LastState())
			if tt.err != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.err)
				require.Nil(t, e)
				require.Equal(t, 0, p.Len())
				require.Equal(t, 4, p.Cap())
				return
			}
			require.NoError(t, err)
			require.NotNil(t, e)
			require.Equal(t, *tt.text, e.Text())
			require.Same(t, e, p.At(0))
		})
	}
}

func TestPoolDates(t *testing.T) {
	p := NewPool(2)
	e, err := p.Append(str("job"), str("2019-03-04"), str("2020-02-29"))
	require.NoError(t, err)

	start := e.Time(TimeStart)
	require.True(t, start.Set)
	assert.Equal(t, 2019, start.Time.Year())
	assert.Equal(t, 4, start.Time.Day())

	end := e.Time(TimeEnd)
	require.True(t, end.Set)
	assert.Equal(t, "2020-02-29", end.Time.Format(DateLayout))

	e, err = p.Append(str("current"), str("2022-01-01"), nil)
	require.NoError(t, err)
	assert.False(t, e.Time(TimeEnd).Set)
}

func TestPoolFull(t *testing.T) {
	p := NewPool(2)
	first, err := p.Append(str("one"), str("2001-01-01"), nil)
	require.NoError(t, err)
	_, err = p.Append(str("two"), nil, nil)
	require.NoError(t, err)

	_, err = p.Append(str("three"), nil, nil)
	require.ErrorIs(t, err, ErrFull)
	require.Equal(t, StateFull, p.LastState())
	require.Equal(t, 2, p.Len())

	require.Same(t, first, p.At(0))
	assert.Equal(t, "one", p.At(0).Text())
	assert.Equal(t, "two", p.At(1).Text())
	assert.True(t, p.At(0).Time(TimeStart).Set)
}

func TestPoolFullCheckedFirst(t *testing.T) {
	p := NewPool(0)
	_, err := p.Append(nil, nil, nil)
	require.ErrorIs(t, err, ErrFull)
}

func TestPoolAppendBytesCopies(t *testing.T) {
	buf := []byte(`"editor"`)
	p := NewPool(1)
	e, err := p.AppendBytes(buf[1:len(buf)-1], "", "")
	require.NoError(t, err)

	copy(buf, `"xxxxxx"`)
	assert.Equal(t, "editor", e.Text())

	_, err = NewPool(1).AppendBytes(nil, "", "")
	require.ErrorIs(t, err, ErrTextMissing)
	_, err = NewPool(1).AppendBytes(buf[:0], "", "")
	require.ErrorIs(t, err, ErrTextEmpty)
}

type recordingLogger struct {
	log.NoopLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string, fields ...log.Field) {
	l.warnings = append(l.warnings, msg)
}

func TestPoolWarnsOutsideSanityWindow(t *testing.T) {
	logger := &recordingLogger{}
	p := NewPool(3, WithLogger(logger))

	_, err := p.Append(str("ancient"), str("1950-01-01"), nil)
	require.NoError(t, err)
	_, err = p.Append(str("recent"), str("2000-01-01"), str("2100-01-01"))
	require.NoError(t, err)
	_, err = p.Append(str("fine"), str("2000-01-01"), nil)
	require.NoError(t, err)

	assert.Len(t, logger.warnings, 2)
}

func TestPoolClose(t *testing.T) {
	p := NewPool(3)
	var held []*Entry
	for _, s := range []string{"a", "b", "c"} {
		e, err := p.Append(str(s), str("2010-01-01"), nil)
		require.NoError(t, err)
		held = append(held, e)
	}
	p.Close()
	require.Equal(t, 0, p.Len())
	for _, e := range held {
		assert.Empty(t, e.Text())
		assert.False(t, e.Time(TimeStart).Set)
	}

	// closing twice is harmless
	p.Close()
	require.Equal(t, 0, p.Len())
}

func TestStateLabels(t *testing.T) {
	assert.Equal(t, "unknown", NewPool(1).LastState().String())
	assert.Equal(t, "error-start-missing", StateStartDateMissing.String())
	assert.Equal(t, "error-section-missing", StateSectionMissing.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.True(t, StateFull.Failed())
	assert.False(t, StateOK.Failed())

	err := error(&Error{State: StateResize})
	assert.True(t, errors.Is(err, ErrResize))
	assert.False(t, errors.Is(err, ErrFull))
	assert.Equal(t, "entry: error-resize", err.Error())
}
