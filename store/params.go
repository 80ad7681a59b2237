package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/etnz/limitcalc"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// savedAtFormat is ISO-8601 in UTC with milliseconds.
const savedAtFormat = "2006-01-02T15:04:05.000Z07:00"

// requiredFields must all be truthy for a stored record to load.
var requiredFields = []string{"position", "costPrice", "currentPrice", "limitPercent"}

// Parameters are the last used projection inputs.
type Parameters struct {
	Position     limitcalc.Quantity
	CostPrice    limitcalc.Money
	CurrentPrice limitcalc.Money
	LimitPercent limitcalc.Percent
	SavedAt      time.Time // set by Params.Save
}

// record is the on-disk form of Parameters.
type record struct {
	Position     limitcalc.Quantity `json:"position"`
	CostPrice    limitcalc.Money    `json:"costPrice"`
	CurrentPrice limitcalc.Money    `json:"currentPrice"`
	LimitPercent limitcalc.Percent  `json:"limitPercent"`
	SavedAt      string             `json:"savedAt,omitempty"`
}

// Params stores Parameters under Key in a KV.
//
// None of its methods return errors: failures are logged and reported as
// false (Save, Clear) or as an absent record (Load). A caller cannot tell
// "never saved" from "failed to read".
type Params struct {
	kv  KV
	log *zap.Logger
	now func() time.Time
}

// Option configures Params.
type Option func(*Params)

// WithLogger sets the logger used to report storage failures.
func WithLogger(l *zap.Logger) Option { return func(p *Params) { p.log = l } }

// WithClock sets the function giving the save timestamp.
func WithClock(now func() time.Time) Option { return func(p *Params) { p.now = now } }

// NewParams returns Params persisting into kv.
func NewParams(kv KV, opts ...Option) *Params {
	p := &Params{kv: kv, log: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Save writes the four inputs and the current time, replacing any previous
// record. SavedAt of in is ignored.
func (p *Params) Save(in Parameters) bool {
	data, err := json.Marshal(record{
		Position:     in.Position,
		CostPrice:    in.CostPrice,
		CurrentPrice: in.CurrentPrice,
		LimitPercent: in.LimitPercent,
		SavedAt:      p.now().UTC().Format(savedAtFormat),
	})
	if err != nil {
		p.log.Error("cannot encode parameters", zap.Error(err))
		return false
	}
	if err := p.kv.Set(Key, data); err != nil {
		p.log.Error("cannot save parameters", zap.String("key", Key), zap.Error(err))
		return false
	}
	p.log.Debug("parameters saved", zap.String("key", Key), zap.ByteString("record", data))
	return true
}

// Load returns the stored parameters. It returns false if nothing was saved,
// if the record is malformed, or if any of the four inputs is missing or
// falsy (null, false, 0, "").
func (p *Params) Load() (Parameters, bool) {
	data, err := p.kv.Get(Key)
	if errors.Is(err, ErrNotFound) {
		p.log.Debug("no parameters saved", zap.String("key", Key))
		return Parameters{}, false
	}
	if err != nil {
		p.log.Warn("cannot load parameters", zap.String("key", Key), zap.Error(err))
		return Parameters{}, false
	}

	if !gjson.ValidBytes(data) {
		p.log.Warn("stored parameters are not valid JSON", zap.String("key", Key))
		return Parameters{}, false
	}
	for _, field := range requiredFields {
		if falsy(gjson.GetBytes(data, field)) {
			p.log.Debug("stored parameters are incomplete", zap.String("field", field))
			return Parameters{}, false
		}
	}

	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		p.log.Warn("stored parameters are malformed", zap.String("key", Key), zap.Error(err))
		return Parameters{}, false
	}
	out := Parameters{
		Position:     r.Position,
		CostPrice:    r.CostPrice,
		CurrentPrice: r.CurrentPrice,
		LimitPercent: r.LimitPercent,
	}
	if r.SavedAt != "" {
		if t, err := time.Parse(time.RFC3339, r.SavedAt); err == nil {
			out.SavedAt = t
		} else {
			p.log.Debug("ignoring invalid savedAt", zap.String("savedAt", r.SavedAt), zap.Error(err))
		}
	}
	return out, true
}

// Clear deletes the stored record. Clearing an absent record succeeds.
func (p *Params) Clear() bool {
	if err := p.kv.Delete(Key); err != nil {
		p.log.Error("cannot clear parameters", zap.String("key", Key), zap.Error(err))
		return false
	}
	return true
}

// Exists reports whether Load would return a record.
func (p *Params) Exists() bool {
	_, ok := p.Load()
	return ok
}

// falsy mirrors the loose truthiness of the record's fields: absent, null,
// false, 0 and "" all mean "not set".
func falsy(r gjson.Result) bool {
	if !r.Exists() {
		return true
	}
	switch r.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return r.Num == 0
	case gjson.String:
		return r.Str == ""
	}
	return false
}
