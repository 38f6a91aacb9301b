package telemetry

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/intcatch/platymeta/errors"
	"github.com/intcatch/platymeta/schema"
)

var floatRe = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)

// payloadKeys is the dispatch order for recognized payload keys. Kept
// fixed (flags and home before pose) so a line carrying several keys
// always decodes to the same event sequence, which keeps reruns over
// the same file byte-identical.
var payloadKeys = []string{
	"has_first_gps",
	"is_autonomous",
	"rc_override",
	"home_pose",
	"pose",
	"sensor",
	"cmd",
}

// DecodeLine splits one raw log line of the form
// `<offset_ms>\t<level>\t<json>` and decodes the payload into events.
// The payload may itself contain tabs. Unrecognized payload keys are
// dropped; a payload that is not valid JSON aborts with
// errors.MalformedPayload.
func DecodeLine(line string) (ts float64, level string, events []Event, err error) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return 0, "", nil, errors.NewMalformedLine(line, "want <offset_ms>\\t<level>\\t<json>")
	}
	offsetMs, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, "", nil, errors.NewMalformedLine(line, "offset_ms "+strconv.Quote(parts[0])+" is not a number")
	}
	ts = offsetMs / 1000
	level = parts[1]

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(parts[2]), &payload); err != nil {
		return 0, "", nil, errors.NewMalformedPayload(parts[2], err)
	}

	events = make([]Event, 0, len(payload))
	for _, key := range payloadKeys {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		ev, err := decodeEntry(ts, key, raw)
		if err != nil {
			return 0, "", nil, errors.NewMalformedPayload(parts[2], err)
		}
		events = append(events, ev)
	}
	return ts, level, events, nil
}

func decodeEntry(ts float64, key string, raw json.RawMessage) (Event, error) {
	switch key {
	case "has_first_gps":
		return FirstGpsFlag{Ts: ts, Val: flexBool(raw)}, nil
	case "is_autonomous":
		return AutonomousFlag{Ts: ts, Val: flexBool(raw)}, nil
	case "rc_override":
		return RcOverrideFlag{Ts: ts, Val: flexBool(raw)}, nil
	case "pose":
		var body struct {
			P []float64 `json:"p"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		if len(body.P) < 2 {
			return nil, errors.NewDimensionMismatch("pose needs easting and northing")
		}
		return Pose{Ts: ts, P: schema.Pose{Easting: body.P[0], Northing: body.P[1]}}, nil
	case "home_pose":
		var body string
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		p, err := poseFromString(body)
		if err != nil {
			return nil, err
		}
		return HomePose{Ts: ts, P: p}, nil
	case "sensor":
		var body struct {
			Type string  `json:"type"`
			Data float64 `json:"data"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		return SensorReading{Ts: ts, Type: body.Type, Value: body.Data}, nil
	case "cmd":
		return MotorCommand{Ts: ts, Raw: raw}, nil
	}
	panic("telemetry: decodeEntry called with unhandled key " + key)
}

// flexBool decodes a payload flag. Some firmware revisions emitted
// native JSON booleans, others the literal string "true"; anything
// else, including native false and non-"true" strings, is false.
func flexBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true"
	}
	return false
}

// poseFromString pulls the first two floats out of a free-form home
// pose string, tolerating whatever non-numeric text surrounds them.
func poseFromString(s string) (schema.Pose, error) {
	m := floatRe.FindAllString(s, 2)
	if len(m) < 2 {
		return schema.Pose{}, errors.NewDimensionMismatch("home pose string " + strconv.Quote(s) + " holds fewer than two numbers")
	}
	easting, err := strconv.ParseFloat(m[0], 64)
	if err != nil {
		return schema.Pose{}, err
	}
	northing, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return schema.Pose{}, err
	}
	return schema.Pose{Easting: easting, Northing: northing}, nil
}
