// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности в арене
type EntityID uint64
