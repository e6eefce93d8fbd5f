package resume

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/sirspot/resume/pkg/entry"
	"github.com/sirspot/resume/pkg/jsonscan"
	"github.com/sirspot/resume/pkg/log"
	"github.com/sirspot/resume/pkg/section"
)

// Configuration keys.
const (
	keyName       = "name"
	keyDateOrder  = "date_order"
	keyDateOption = "date_option"
	keyDisplayMax = "display_max"
	keyOrder      = "order"
	keyEntries    = "entries"
	keyText       = "text"
	keyDateStart  = "date_start"
	keyDateEnd    = "date_end"
)

// FillFromJSON appends one section per object in the top-level array of
// raw, in document order. Elements that are not objects are skipped. The
// first error stops the fill; the section being filled is removed and the
// error is a *FillError.
func (r *Resume) FillFromJSON(raw []byte) error {
	r.logger.Debug("filling from configuration",
		log.Size("size", len(raw)),
		log.Digest("xxhash", xxhash.Sum64(raw)),
	)

	pos := jsonscan.SkipWhitespace(raw, 0)
	if pos >= len(raw) || raw[pos] != '[' {
		return jsonError("", jsonscan.StateArrayMissingStart, pos)
	}

	var st jsonscan.State
	pos, index := r.scanner.NextArrayIndex(raw, pos+1, jsonscan.Invalid, &st)
	for index != jsonscan.Invalid {
		if raw[pos] == '{' {
			if err := r.appendSection(raw, pos); err != nil {
				return err
			}
		}
		pos, index = r.scanner.NextArrayIndex(raw, pos, index, &st)
	}
	if st := closed(raw, pos, st); st != jsonscan.StateOK {
		return jsonError("", st, pos)
	}
	return nil
}

// closed reports st, or StateArrayMissingEnd if an iteration that ended
// without error stopped anywhere but a closing bracket.
func closed(raw []byte, pos int, st jsonscan.State) jsonscan.State {
	if st == jsonscan.StateOK && (pos >= len(raw) || raw[pos] != ']') {
		return jsonscan.StateArrayMissingEnd
	}
	return st
}

func (r *Resume) appendSection(raw []byte, pos int) error {
	index := r.chain.Len()
	s := r.chain.Append()
	if err := r.fillSection(s, raw, pos); err != nil {
		_ = r.chain.Remove(index)
		return err
	}
	r.logger.Debug("section filled",
		log.String("section", s.Title()),
		log.Int("entries", s.Len()),
		log.String("order", s.Order.String()),
	)
	return nil
}

// fillSection applies the members of the object at pos to s.
func (r *Resume) fillSection(s *section.Section, raw []byte, pos int) error {
	// Look up the name first so errors in earlier members can name the
	// section.
	var st jsonscan.State
	if v := r.scanner.LocateKeyValue(raw, pos, keyName, &st); st == jsonscan.StateOK {
		if name, ok := r.stringAt(raw, v); ok {
			s.SetTitle(string(name))
		}
	}

	return r.eachMember(raw, pos, s.Title, func(key string, value []byte, at int) error {
		switch key {
		case keyName:
			if name, ok := unquote(value); ok {
				s.SetTitle(string(name))
			}
		case keyDateOrder:
			if v, ok := unquote(value); ok {
				switch string(v) {
				case keyDateEnd:
					s.Field = entry.TimeEnd
				case keyDateStart:
					s.Field = entry.TimeStart
				}
			}
		case keyDateOption:
			if v, ok := unquote(value); ok {
				if opt, ok := section.ParseDateOption(string(v)); ok {
					s.Dates = opt
				}
			}
		case keyDisplayMax:
			limit, ok := parseLimit(value)
			if !ok {
				return jsonError(s.Title(), jsonscan.StateValueInvalid, at)
			}
			s.Limit = limit
		case keyOrder:
			if v, ok := unquote(value); ok {
				if order, ok := section.ParseOrder(string(v)); ok {
					s.Order = order
				}
			}
		case keyEntries:
			if value[0] == '[' {
				return r.fillEntries(s, raw, at)
			}
		default:
			r.logger.Debug("ignoring section key", log.String("key", key), log.String("section", s.Title()))
		}
		return nil
	})
}

// fillEntries adds one entry per object in the array at pos.
func (r *Resume) fillEntries(s *section.Section, raw []byte, pos int) error {
	var st jsonscan.State
	pos, index := r.scanner.NextArrayIndex(raw, pos+1, jsonscan.Invalid, &st)
	for index != jsonscan.Invalid {
		if raw[pos] == '{' {
			if err := r.fillEntry(s, raw, pos); err != nil {
				return err
			}
		}
		pos, index = r.scanner.NextArrayIndex(raw, pos, index, &st)
	}
	if st := closed(raw, pos, st); st != jsonscan.StateOK {
		return jsonError(s.Title(), st, pos)
	}
	return nil
}

func (r *Resume) fillEntry(s *section.Section, raw []byte, pos int) error {
	var text []byte
	var start, end string
	err := r.eachMember(raw, pos, s.Title, func(key string, value []byte, _ int) error {
		v, ok := unquote(value)
		if !ok {
			return nil
		}
		switch key {
		case keyText:
			text = v
		case keyDateStart:
			start = string(v)
		case keyDateEnd:
			end = string(v)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.add(s, text, start, end)
}

// eachMember calls fn for every member of the object at pos with the
// unquoted key, the raw value and the value's offset. title names the
// section for errors.
func (r *Resume) eachMember(raw []byte, pos int, title func() string, fn func(key string, value []byte, at int) error) error {
	var st jsonscan.State
	key, pos := r.scanner.NextKeyValue(raw, pos+1, &st)
	for len(key) >= 2 {
		n := r.scanner.ValueLength(raw, pos, &st)
		if n == 0 || st != jsonscan.StateOK {
			return jsonError(title(), st, pos)
		}
		if err := fn(string(key[1:len(key)-1]), raw[pos:pos+n], pos); err != nil {
			return err
		}
		key, pos = r.scanner.NextKeyValue(raw, pos+n, &st)
	}
	if st != jsonscan.StateOK {
		return jsonError(title(), st, pos)
	}
	return nil
}

func (r *Resume) stringAt(raw []byte, pos int) ([]byte, bool) {
	n := r.scanner.StringLength(raw, pos, nil)
	if n < 2 {
		return nil, false
	}
	return raw[pos+1 : pos+n-1], true
}

// unquote returns the contents of a string value. Escapes are kept as
// written.
func unquote(value []byte) ([]byte, bool) {
	if len(value) < 2 || value[0] != '"' {
		return nil, false
	}
	return value[1 : len(value)-1], true
}

// parseLimit reads a display limit: a number, whose integer part is used,
// or one of the strings "all" and "none".
func parseLimit(value []byte) (section.Limit, bool) {
	if v, ok := unquote(value); ok {
		switch string(v) {
		case "all":
			return section.All, true
		case "none":
			return section.None, true
		}
		return 0, false
	}
	end := 0
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(string(value[:end]))
	if err != nil {
		return 0, false
	}
	return section.Limit(n), true
}
