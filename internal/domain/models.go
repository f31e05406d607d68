package domain

import "time"

type Reminder struct {
	ID     int64
	Owner  int64 // telegram user id
	ChatID int64 // куда слать; в личке совпадает с Owner
	Text   string
	DueAt  time.Time
}

// Stage — шаг диалога с пользователем.
type Stage int

const (
	StageIdle Stage = iota
	StageAwaitingText
	StageAwaitingDate
	StageAwaitingTime
	StageAwaitingDeleteID
)

// Conversation держит стадию и частично собранные поля напоминания.
// Zero value = Idle без данных.
type Conversation struct {
	Stage Stage
	Text  string
	Date  time.Time // полночь выбранного дня; IsZero() = дата ещё не введена
}
