// internal/event/types.go
package event

const (
	CommandIssued        EventType = "CommandIssued"        // На холст добавлена команда рисования
	UnsupportedOperation EventType = "UnsupportedOperation" // Операция не поддерживается фигурой
	SceneRedrawn         EventType = "SceneRedrawn"         // Сцена перерисована по запросу пользователя
)
