package rop

import "encoding/json"

type resultJSON[T any] struct {
	Data     T         `json:"data"`
	Status   Status    `json:"status"`
	Messages []string  `json:"messages,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON[T]{
		Data:     r.data,
		Status:   r.status,
		Messages: r.messages,
	})
}

func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var v resultJSON[T]
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = New(v.Data, v.Status, v.Messages)
	return nil
}

func (r Items[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON[[]T]{
		Data:     r.data,
		Status:   r.status,
		Messages: r.messages,
		Metadata: r.metadata,
	})
}

func (r *Items[T]) UnmarshalJSON(b []byte) error {
	var v resultJSON[[]T]
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = NewItems(v.Data, v.Status, v.Messages, v.Metadata)
	return nil
}
