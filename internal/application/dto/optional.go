package dto

import "encoding/json"

// Optional distingue tres estados de un campo en un PATCH/PUT parcial:
// ausente (Set=false), null explícito (Set=true, Null=true) y con valor.
// UnmarshalJSON solo se invoca cuando la clave viene en el cuerpo.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some devuelve un Optional con valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null devuelve un Optional con null explícito.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// HasValue indica que el campo vino con un valor no nulo.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// Ptr devuelve nil si el campo es null, o un puntero al valor.
func (o Optional[T]) Ptr() *T {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
