// Package repository содержит интерфейсы доступа к данным и их
// реализации на GORM. Сентинельные ошибки ниже переиспользуются всеми
// репозиториями, чтобы верхние слои различали классы отказов, не
// завися от ошибок GORM напрямую.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound — строка с указанным ключом отсутствует.
var ErrNotFound = errors.New("record not found")

// ErrConflict — запись нарушает уникальность ключа (дубликат составного
// PK) либо запрещённую ссылочную зависимость.
var ErrConflict = errors.New("conflict")

// translate приводит ошибки GORM к сентинелам слоя доступа.
// Требует gorm.Config{TranslateError: true} при открытии соединения.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	default:
		return err
	}
}
