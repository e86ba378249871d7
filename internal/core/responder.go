// ABOUTME: Scripted assistant that answers user messages with canned replies after a delay
// ABOUTME: Only one reply is ever pending; a newer message cancels the older reply
package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/carenotes/internal/models"
)

// DefaultReplyDelay is how long the assistant "types" before replying
const DefaultReplyDelay = 1500 * time.Millisecond

// Rule maps any of its keywords, matched as case-insensitive substrings, to a reply
type Rule struct {
	Keywords []string
	Reply    string
}

// Script is an ordered rule table with fallback replies.
// Replies may use {child} for the active child's name and {message} for the
// lowercased user message.
type Script struct {
	Rules     []Rule
	Fallbacks []string
}

// AssistantSuggestions returns the quick prompts offered before the first message.
// Each one matches a rule in DefaultScript.
func AssistantSuggestions() []string {
	return []string{
		"Como lidar com crises sensoriais?",
		"Estratégias para melhorar a comunicação",
		"Atividades para desenvolver habilidades sociais",
		"Dicas para estabelecer rotinas",
		"Como preparar para mudanças na rotina?",
	}
}

// DefaultScript returns the built-in rule table
func DefaultScript() *Script {
	return &Script{
		Rules: []Rule{
			{
				Keywords: []string{"crise", "meltdown", "sobrecarga"},
				Reply: "Durante uma crise sensorial, o mais importante é reduzir estímulos. Leve {child} para um ambiente " +
					"calmo, diminua luzes e sons, e ofereça um objeto de conforto. Evite muitas palavras e espere a " +
					"regulação antes de conversar sobre o que aconteceu.",
			},
			{
				Keywords: []string{"comunicação", "comunicacao", "falar", "fala"},
				Reply: "Para apoiar a comunicação de {child}, use frases curtas e apoio visual, dê tempo extra para a " +
					"resposta e valorize qualquer forma de expressão, inclusive gestos e cartões PECS.",
			},
			{
				Keywords: []string{"social", "sociais", "amigos", "brincar"},
				Reply: "Habilidades sociais se desenvolvem melhor em pequenos passos. Experimente brincadeiras " +
					"estruturadas com um colega por vez e use histórias sociais para preparar {child} para as interações.",
			},
			{
				Keywords: []string{"mudança", "mudanca", "transição", "transicao"},
				Reply: "Antecipe mudanças na rotina com {child} usando um quadro visual e avisos com antecedência. " +
					"Um temporizador ajuda a tornar as transições mais previsíveis.",
			},
			{
				Keywords: []string{"rotina", "horário", "horario"},
				Reply: "Rotinas previsíveis trazem segurança. Monte com {child} um quadro visual do dia com imagens " +
					"para cada atividade e mantenha horários consistentes para acordar, comer e dormir.",
			},
			{
				Keywords: []string{"sono", "dormir"},
				Reply: "Para o sono de {child}, crie um ritual noturno curto e sempre igual, reduza telas uma hora antes " +
					"de dormir e mantenha o quarto escuro e silencioso.",
			},
			{
				Keywords: []string{"escola", "professor", "professora"},
				Reply: "Compartilhar o perfil sensorial de {child} com a escola ajuda muito. Combine com a equipe " +
					"estratégias de pausa e um espaço calmo para momentos de sobrecarga.",
			},
		},
		Fallbacks: []string{
			"Olá! Entendo sua preocupação sobre {message}. Para {child}, é importante manter a calma e usar " +
				"estratégias sensoriais adequadas. Posso sugerir algumas técnicas específicas baseadas no perfil sensorial da criança.",
			"Ótima pergunta! Com base no perfil de {child}, recomendo uma abordagem gradual. Vamos trabalhar " +
				"juntos para encontrar a melhor estratégia para essa situação.",
			"Isso é muito comum em crianças no espectro autista. Para {child} especificamente, sugiro começarmos " +
				"com pequenos passos e muito reforço positivo. Posso detalhar algumas técnicas específicas?",
		},
	}
}

// Reply picks the reply for message. The first matching rule wins; with no
// match, turn selects a fallback in rotation.
func (s *Script) Reply(message, child string, turn int) string {
	lower := strings.ToLower(message)
	template := ""
	for _, rule := range s.Rules {
		if matchesAny(lower, rule.Keywords) {
			template = rule.Reply
			break
		}
	}
	if template == "" && len(s.Fallbacks) > 0 {
		if turn < 0 {
			turn = -turn
		}
		template = s.Fallbacks[turn%len(s.Fallbacks)]
	}
	if child == "" {
		child = "a criança"
	}
	return strings.NewReplacer("{child}", child, "{message}", lower).Replace(template)
}

func matchesAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Poster is the part of the controller the responder writes to
type Poster interface {
	PostMessage(role models.Role, content string) (models.ChatMessage, error)
	ActiveProfile() *models.Profile
}

// Responder schedules scripted replies as cancellable delayed tasks
type Responder struct {
	target  Poster
	script  *Script
	delay   time.Duration
	logger  *log.Logger
	onReply func(models.ChatMessage)

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    int
	turn   int
	closed bool
	wg     sync.WaitGroup
}

// NewResponder creates a responder posting to target after delay.
// A nil script uses DefaultScript; a nil logger uses log.Default().
func NewResponder(target Poster, script *Script, delay time.Duration, logger *log.Logger) *Responder {
	if script == nil {
		script = DefaultScript()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Responder{
		target: target,
		script: script,
		delay:  delay,
		logger: logger,
	}
}

// OnReply registers fn to run after each reply is posted
func (r *Responder) OnReply(fn func(models.ChatMessage)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onReply = fn
}

// Respond schedules a reply to userMessage, cancelling any reply still pending.
// The reply is dropped if ctx ends before the delay elapses.
func (r *Responder) Respond(ctx context.Context, userMessage string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if r.cancel != nil {
		r.cancel()
		r.logger.Debug("superseded pending reply")
	}

	child := ""
	if p := r.target.ActiveProfile(); p != nil {
		child = p.Name
	}
	reply := r.script.Reply(userMessage, child, r.turn)
	r.turn++

	taskCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	r.wg.Add(1)
	go r.deliver(taskCtx, cancel, r.gen, reply)
}

func (r *Responder) deliver(ctx context.Context, cancel context.CancelFunc, gen int, reply string) {
	defer r.wg.Done()
	defer cancel()

	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		r.finish(gen)
		return
	case <-timer.C:
	}

	r.mu.Lock()
	// a newer Respond may have cancelled us after the timer fired
	if ctx.Err() != nil {
		r.finishLocked(gen)
		r.mu.Unlock()
		return
	}
	msg, err := r.target.PostMessage(models.RoleAssistant, reply)
	r.finishLocked(gen)
	onReply := r.onReply
	r.mu.Unlock()

	if err != nil {
		r.logger.Error("failed to post assistant reply", "err", err)
		return
	}
	if onReply != nil {
		onReply(msg)
	}
}

func (r *Responder) finish(gen int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finishLocked(gen)
}

// finishLocked clears the pending marker if gen is still the latest task
func (r *Responder) finishLocked(gen int) {
	if r.gen == gen {
		r.cancel = nil
	}
}

// Pending reports whether a reply is scheduled but not yet posted
func (r *Responder) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Cancel drops the pending reply, if any
func (r *Responder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Wait blocks until every scheduled reply has been posted or cancelled
func (r *Responder) Wait() {
	r.wg.Wait()
}

// Close cancels any pending reply, waits for it to settle, and ignores later Respond calls
func (r *Responder) Close() {
	r.mu.Lock()
	r.closed = true
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()
	r.wg.Wait()
}
