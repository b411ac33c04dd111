package domain

import "encoding/json"

// Payload is an opaque serialized value stored as a single store field.
// The round-trip contract is the whole interface: for any encodable x,
// EncodePayload(x).Decode(&y) leaves y equal to x. Consumers must not assume
// anything about the byte layout beyond that.
type Payload string

// EncodePayload serializes v into a Payload.
func EncodePayload(v any) (Payload, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Payload(b), nil
}

// Decode deserializes the payload into v.
func (p Payload) Decode(v any) error {
	return json.Unmarshal([]byte(p), v)
}

func (p Payload) String() string {
	return string(p)
}

// FetchEnvelope is the serialized shape of one provider fetch, stored on the
// listing as its source snapshot.
type FetchEnvelope struct {
	Data []RemotePost `json:"data"`
}
