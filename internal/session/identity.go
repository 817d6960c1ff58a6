package session

import (
	"fmt"
	"strings"
)

// identityStep tracks progress through character creation: name, then
// class, then a final confirmation.
type identityStep int

const (
	stepName identityStep = iota
	stepClass
	stepConfirm
)

const namePrompt = "Name: "

func (s *Session) classPrompt() string {
	return fmt.Sprintf("Class (%s): ", strings.Join(s.game.ClassNames(), ", "))
}

func (s *Session) confirmPrompt() string {
	return fmt.Sprintf("Create %s the %s? [y/N]: ", s.name, s.class)
}

// handleIdentityLine advances character creation by one submitted
// line.  Invalid input re-prompts the current step; a non-affirmative
// confirmation restarts capture from the name, discarding both fields.
func (s *Session) handleIdentityLine(line string) {
	trimmed := strings.TrimSpace(line)
	switch s.step {
	case stepName:
		if trimmed == "" {
			s.announce("A name is required.")
			break
		}
		s.name = trimmed
		s.step = stepClass
		s.prompt = s.classPrompt()
	case stepClass:
		canonical, ok := s.lookupClass(trimmed)
		if !ok {
			s.announce(fmt.Sprintf("Unknown class %q. Choose one of: %s.",
				trimmed, strings.Join(s.game.ClassNames(), ", ")))
			break
		}
		s.class = canonical
		s.step = stepConfirm
		s.prompt = s.confirmPrompt()
	case stepConfirm:
		s.finishConfirm(trimmed)
	}
	s.render()
}

func (s *Session) finishConfirm(answer string) {
	if a := strings.ToLower(answer); a != "y" && a != "yes" {
		s.restartCapture("Let's start over.")
		return
	}

	screen, err := s.game.Join(s.ID, s.name, s.class, s.Push)
	if err != nil {
		s.log.Warn("join %s: %v", s.name, err)
		s.restartCapture("error: " + err.Error())
		return
	}

	if !s.phase.CompareAndSwap(int32(PhaseIdentityCapture), int32(PhaseGameplayLoop)) {
		// Terminated while joining; withdraw the player again in
		// case Terminate's Leave ran before the join landed.
		s.game.Leave(s.ID)
		return
	}
	s.prompt = gameplayPrompt
	s.announce(screen)
	s.log.Info("%s the %s entered the gameplay loop", s.name, s.class)
}

// restartCapture discards any captured identity and returns to the
// name step.
func (s *Session) restartCapture(notice string) {
	s.name, s.class = "", ""
	s.step = stepName
	s.prompt = namePrompt
	s.announce(notice)
}

// announce writes a line of output above the prompt.
func (s *Session) announce(line string) {
	s.mu.Lock()
	s.writeBlockLocked(line)
	s.mu.Unlock()
}

// lookupClass resolves a class name case-insensitively, returning the
// canonical casing.
func (s *Session) lookupClass(name string) (string, bool) {
	for _, c := range s.game.ClassNames() {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// completeClass offers class-name candidates during the class step.
func (s *Session) completeClass(prefix string) []string {
	var out []string
	for _, c := range s.game.ClassNames() {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(prefix)) {
			out = append(out, c)
		}
	}
	return out
}
