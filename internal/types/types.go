// internal/types/types.go
package types

// EntityID: стабильный целочисленный идентификатор сущности.
// Используется вместо указателей как ключ в картах попаданий и кулдаунов.
type EntityID uint64
