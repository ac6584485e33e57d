// Package view содержит явное состояние верхнеуровневого представления:
// активный раздел, заставку, диалог редактирования и черновик формы.
package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aidar/dsc-roster/internal/domain"
	"github.com/aidar/dsc-roster/internal/roster"
)

// Section раздел сайта
type Section string

// Разделы сайта
const (
	SectionHome  Section = "home"
	SectionAbout Section = "about"
	SectionTeam  Section = "team"
)

// DefaultSplashDuration длительность заставки при запуске
const DefaultSplashDuration = 3 * time.Second

var (
	// ErrDraftInvalid возвращается при отправке формы без имени или роли
	ErrDraftInvalid = errors.New("name and role are required")

	// ErrSaveFailed возвращается когда сервис не принял изменения, диалог остается открытым
	ErrSaveFailed = errors.New("team member was not saved")
)

// Roster операции менеджера состава, которые использует представление
type Roster interface {
	Create(ctx context.Context, draft domain.Draft) *domain.TeamMember
	Update(ctx context.Context, id string, draft domain.Draft) bool
	Remove(ctx context.Context, intent roster.RemovalIntent) bool
}

// State состояние представления. Не потокобезопасно: принадлежит одному представлению.
type State struct {
	Section    Section
	Splash     bool
	DialogOpen bool
	Editing    *domain.TeamMember
	Form       domain.Draft
}

// New возвращает начальное состояние: раздел home, заставка показана, диалог закрыт
func New() *State {
	return &State{
		Section: SectionHome,
		Splash:  true,
	}
}

// Navigate переключает раздел; неизвестные разделы игнорируются
func (s *State) Navigate(section Section) bool {
	switch section {
	case SectionHome, SectionAbout, SectionTeam:
		s.Section = section
		return true
	default:
		return false
	}
}

// StartSplash один раз скрывает заставку через d (DefaultSplashDuration при d <= 0).
// Возвращаемый канал закрывается, когда заставка скрыта или ctx отменен.
// Поле Splash меняет только вызывающая горутина после чтения из канала.
func (s *State) StartSplash(ctx context.Context, d time.Duration) <-chan struct{} {
	if d <= 0 {
		d = DefaultSplashDuration
	}

	done := make(chan struct{})
	timer := time.NewTimer(d)
	go func() {
		defer close(done)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}()
	return done
}

// WaitSplash блокируется до окончания заставки и скрывает ее.
// Если ctx отменен раньше, заставка остается показанной.
func (s *State) WaitSplash(ctx context.Context, d time.Duration) {
	<-s.StartSplash(ctx, d)
	if ctx.Err() != nil {
		return
	}
	s.Splash = false
}

// OpenAdd открывает пустой диалог добавления участника
func (s *State) OpenAdd() {
	s.Editing = nil
	s.Form = domain.Draft{}
	s.DialogOpen = true
}

// OpenEdit открывает диалог редактирования, заполняя форму полями участника
func (s *State) OpenEdit(member domain.TeamMember) {
	s.Editing = &member
	s.Form = domain.DraftOf(member)
	s.DialogOpen = true
}

// Close закрывает диалог и сбрасывает форму
func (s *State) Close() {
	s.DialogOpen = false
	s.Editing = nil
	s.Form = domain.Draft{}
}

// SetField меняет поле черновика формы по имени
func (s *State) SetField(name, value string) error {
	switch name {
	case "name":
		s.Form.Name = value
	case "role":
		s.Form.Role = value
	case "photo":
		s.Form.Photo = value
	case "description":
		s.Form.Description = value
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	return nil
}

// Submit сохраняет форму: обновляет редактируемого участника или создает нового.
// После успеха диалог закрывается, при ошибке остается открытым с тем же черновиком.
func (s *State) Submit(ctx context.Context, r Roster) error {
	if s.Form.Name == "" || s.Form.Role == "" {
		return ErrDraftInvalid
	}

	if s.Editing != nil {
		if !r.Update(ctx, s.Editing.ID, s.Form) {
			return ErrSaveFailed
		}
	} else if r.Create(ctx, s.Form) == nil {
		return ErrSaveFailed
	}

	s.Close()
	return nil
}

// Delete спрашивает подтверждение и удаляет участника; отказ не отправляет запрос
func (s *State) Delete(ctx context.Context, r Roster, id string, c roster.Confirmer) bool {
	intent, ok := roster.ConfirmRemoval(id, c)
	if !ok {
		return false
	}
	return r.Remove(ctx, intent)
}
