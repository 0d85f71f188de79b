package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"
)

var dateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Reply is the outbound payload of one conversation turn. Buttons/Sections are
// optional; transports without interactive support render them as numbered
// plain text.
type Reply struct {
	Text       string
	Buttons    []interfaces.Button
	ListButton string
	Sections   []interfaces.Section
}

// Interactive option IDs understood by the inbound mapping.
const (
	buttonConfirmYes      = "confirm_yes"
	buttonConfirmNo       = "confirm_no"
	buttonSkipDescription = "skip_description"
	buttonUseToday        = "use_today"
	buttonEditName        = "edit_name"
	buttonEditDocument    = "edit_document"
	buttonExitEdit        = "exit_edit"
)

var buttonTokens = map[string]string{
	buttonConfirmYes:      "sim",
	buttonConfirmNo:       "não",
	buttonSkipDescription: "pular",
	buttonUseToday:        "hoje",
	buttonEditName:        "nome",
	buttonEditDocument:    "documento",
	buttonExitEdit:        "sair",
}

// IConversationUseCase is the state machine driving receipt creation and
// profile collection over the stateless messaging channel.
type IConversationUseCase interface {
	HandleInbound(ctx context.Context, phone, text, buttonID string) (Reply, error)
}

type ConversationUseCase struct {
	sessions  interfaces.ISessionStore
	users     IUserUseCase
	receipts  IReceiptUseCase
	analytics IAnalyticsUseCase
	publicURL string
	now       func() time.Time
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(
	sessions interfaces.ISessionStore,
	users IUserUseCase,
	receipts IReceiptUseCase,
	analytics IAnalyticsUseCase,
	publicURL string,
) *ConversationUseCase {
	return &ConversationUseCase{
		sessions:  sessions,
		users:     users,
		receipts:  receipts,
		analytics: analytics,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		now:       time.Now,
	}
}

// HandleInbound consumes one inbound message and produces the reply. Faults in
// collaborators are isolated to this turn: the session is left untouched and
// the user gets a retry prompt, never an HTTP error.
func (c *ConversationUseCase) HandleInbound(ctx context.Context, phone, text, buttonID string) (Reply, error) {
	phone = NormalizePhone(phone)
	if phone == "" {
		return Reply{}, ErrInvalidPhone
	}

	if token, ok := buttonTokens[buttonID]; ok {
		text = token
	}
	text = strings.TrimSpace(text)
	msg := strings.ToLower(text)

	user, err := c.users.CreateOrGet(ctx, phone)
	if err != nil {
		log.Printf("[whatsapp][usecase] create-or-get failed phone=%s err=%v", phone, err)
		return Reply{Text: msgGenericError}, nil
	}

	sess, ok := c.sessions.Get(phone)
	if !ok {
		sess = entities.NewSession(phone)
	}

	// Global pre-routing: no receipt can be created without provider identity.
	// An incomplete profile outside the profile-collection states forces the
	// setup flow, unless the user is explicitly asking about their profile.
	if !user.ProfileComplete && !sess.State.IsProfileCollection() && !mentionsProfile(msg) {
		sess.State = entities.StateCollectingUserName
		sess.Draft = entities.ReceiptDraft{}
		reply := Reply{Text: msgIncompleteProfileIntro()}
		if isGreeting(msg) {
			reply.Text = msgFirstTimeSetup
		}
		c.save(sess)
		return reply, nil
	}

	next, reply := c.dispatch(ctx, sess, user, text, msg)
	c.save(next)
	return reply, nil
}

func (c *ConversationUseCase) save(sess entities.Session) {
	sess.UpdatedAt = c.now()
	c.sessions.Put(sess)
}

func (c *ConversationUseCase) dispatch(ctx context.Context, sess entities.Session, user entities.User, text, msg string) (entities.Session, Reply) {
	switch sess.State {
	case entities.StateStart:
		return c.handleStart(ctx, sess, user, msg)
	case entities.StateCollectingUserName:
		return c.handleCollectingUserName(sess, text)
	case entities.StateCollectingUserDocument:
		return c.handleCollectingUserDocument(ctx, sess, text)
	case entities.StateCollectingClientName:
		return c.handleCollectingClientName(sess, text, msg)
	case entities.StateCollectingClientDocument:
		return c.handleCollectingClientDocument(sess, text)
	case entities.StateCollectingServiceName:
		return c.handleCollectingServiceName(sess, text)
	case entities.StateCollectingServiceDescription:
		return c.handleCollectingServiceDescription(sess, text, msg)
	case entities.StateCollectingAmount:
		return c.handleCollectingAmount(sess, text)
	case entities.StateCollectingDate:
		return c.handleCollectingDate(sess, text, msg)
	case entities.StateConfirming:
		return c.handleConfirming(ctx, sess, msg)
	case entities.StateCompleted:
		return c.handleCompleted(sess, user, msg)
	case entities.StateEditingProfile:
		return c.handleEditingProfile(sess, user, msg)
	case entities.StateEditingUserName:
		return c.handleEditingUserName(ctx, sess, text)
	case entities.StateEditingUserDocument:
		return c.handleEditingUserDocument(ctx, sess, user, text)
	default:
		// Unknown state (e.g. a stale session from an older build): reset.
		sess = entities.NewSession(sess.Phone)
		return sess, Reply{Text: msgHelp}
	}
}

type intentRule struct {
	match  func(msg string) bool
	handle func(ctx context.Context, sess entities.Session, user entities.User) (entities.Session, Reply)
}

// handleStart routes natural-language entry points through an ordered rule
// list; the first match wins.
func (c *ConversationUseCase) handleStart(ctx context.Context, sess entities.Session, user entities.User, msg string) (entities.Session, Reply) {
	rules := []intentRule{
		{matchAny("oi", "olá", "começar"), c.startReceiptFlow},
		{matchAny("perfil", "profile", "editar", "edit"), c.showProfileMenu},
		{matchAny("status", "plano", "assinatura"), c.showStats},
		{matchAny("upgrade", "planos"), c.showPlans},
		{matchAny("dashboard", "painel", "resumo"), c.showDashboard},
		{matchAny("histórico", "historico", "recibos", "lista"), c.showHistory},
		{matchAny("relatório", "relatorio", "financeiro"), c.showReport},
	}
	for _, rule := range rules {
		if rule.match(msg) {
			return rule.handle(ctx, sess, user)
		}
	}
	return sess, Reply{Text: msgHelp}
}

func matchAny(keywords ...string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}

func isGreeting(msg string) bool {
	return matchAny("oi", "olá", "começar")(msg)
}

func mentionsProfile(msg string) bool {
	return matchAny("perfil", "profile", "editar", "edit")(msg)
}

func (c *ConversationUseCase) startReceiptFlow(_ context.Context, sess entities.Session, user entities.User) (entities.Session, Reply) {
	sess.State = entities.StateCollectingClientName
	sess.Draft = entities.ReceiptDraft{}
	return sess, Reply{Text: msgWelcome(user.FullName)}
}

func (c *ConversationUseCase) showProfileMenu(_ context.Context, sess entities.Session, user entities.User) (entities.Session, Reply) {
	sess.State = entities.StateEditingProfile
	return sess, Reply{Text: msgProfileOptions(user), Buttons: profileMenuButtons()}
}

func (c *ConversationUseCase) showStats(ctx context.Context, sess entities.Session, user entities.User) (entities.Session, Reply) {
	stats, err := c.users.GetStats(ctx, user.Phone)
	if err != nil {
		log.Printf("[whatsapp][usecase] stats failed phone=%s err=%v", user.Phone, err)
		return sess, Reply{Text: msgStatsUnavailable}
	}
	return sess, Reply{Text: msgStats(stats)}
}

func (c *ConversationUseCase) showPlans(_ context.Context, sess entities.Session, _ entities.User) (entities.Session, Reply) {
	return sess, Reply{Text: msgPlans(c.publicURL)}
}

func (c *ConversationUseCase) showDashboard(ctx context.Context, sess entities.Session, user entities.User) (entities.Session, Reply) {
	dashboard, err := c.analytics.GetUserDashboard(ctx, user.Phone)
	if err != nil {
		log.Printf("[whatsapp][usecase] dashboard failed phone=%s err=%v", user.Phone, err)
		return sess, Reply{Text: "📊 *Dashboard indisponível no momento.*\n\nDigite *OI* para criar um recibo."}
	}
	return sess, Reply{Text: msgDashboard(dashboard, c.publicURL)}
}

func (c *ConversationUseCase) showHistory(ctx context.Context, sess entities.Session, user entities.User) (entities.Session, Reply) {
	receipts, err := c.receipts.ListByUserPhone(ctx, user.Phone, 5)
	if err != nil {
		log.Printf("[whatsapp][usecase] history failed phone=%s err=%v", user.Phone, err)
		return sess, Reply{Text: "📄 *Histórico indisponível no momento.*\n\nDigite *OI* para criar um recibo."}
	}
	return sess, Reply{Text: msgHistory(receipts, c.publicURL)}
}

func (c *ConversationUseCase) showReport(ctx context.Context, sess entities.Session, user entities.User) (entities.Session, Reply) {
	report, err := c.analytics.GetFinancialReport(ctx, user.Phone, time.Time{}, time.Time{})
	if err != nil {
		log.Printf("[whatsapp][usecase] report failed phone=%s err=%v", user.Phone, err)
		return sess, Reply{Text: "📋 *Relatório indisponível no momento.*\n\nDigite *OI* para criar um recibo."}
	}
	return sess, Reply{Text: msgReport(report, c.publicURL)}
}

func (c *ConversationUseCase) handleCollectingUserName(sess entities.Session, text string) (entities.Session, Reply) {
	if text == "" {
		return sess, Reply{Text: msgPromptUserName}
	}
	sess.Draft.UserFullName = text
	sess.State = entities.StateCollectingUserDocument
	return sess, Reply{Text: msgUserDocument}
}

// handleCollectingUserDocument is the point profile completeness flips true:
// name and document persist together, then the receipt flow begins.
func (c *ConversationUseCase) handleCollectingUserDocument(ctx context.Context, sess entities.Session, text string) (entities.Session, Reply) {
	if text == "" {
		return sess, Reply{Text: msgPromptUserDocument}
	}

	fullName := sess.Draft.UserFullName
	if _, err := c.users.UpdateProfile(ctx, sess.Phone, fullName, text); err != nil {
		log.Printf("[whatsapp][usecase] profile save failed phone=%s err=%v", sess.Phone, err)
		return sess, Reply{Text: msgProfileSaveError}
	}

	sess.State = entities.StateCollectingClientName
	sess.Draft = entities.ReceiptDraft{}
	return sess, Reply{Text: msgProfileComplete(fullName)}
}

func (c *ConversationUseCase) handleCollectingClientName(sess entities.Session, text, msg string) (entities.Session, Reply) {
	if msg == "recomeçar" || msg == "recomecar" {
		sess.Draft = entities.ReceiptDraft{}
		return sess, Reply{Text: msgRestart}
	}
	if text == "" {
		return sess, Reply{Text: msgPromptClientName}
	}
	sess.Draft.ClientName = text
	sess.State = entities.StateCollectingClientDocument
	return sess, Reply{Text: msgClientDocument}
}

func (c *ConversationUseCase) handleCollectingClientDocument(sess entities.Session, text string) (entities.Session, Reply) {
	if text == "" {
		return sess, Reply{Text: msgPromptClientDocument}
	}
	sess.Draft.ClientDocument = text
	sess.State = entities.StateCollectingServiceName
	return sess, Reply{Text: msgServiceName}
}

func (c *ConversationUseCase) handleCollectingServiceName(sess entities.Session, text string) (entities.Session, Reply) {
	if text == "" {
		return sess, Reply{Text: msgPromptServiceName}
	}
	sess.Draft.ServiceName = text
	sess.State = entities.StateCollectingServiceDescription
	return sess, Reply{
		Text:    msgServiceDescription,
		Buttons: []interfaces.Button{{ID: buttonSkipDescription, Title: "Pular"}},
	}
}

func (c *ConversationUseCase) handleCollectingServiceDescription(sess entities.Session, text, msg string) (entities.Session, Reply) {
	if msg == "pular" {
		sess.Draft.ServiceDescription = ""
	} else if text == "" {
		return sess, Reply{Text: msgServiceDescription}
	} else {
		sess.Draft.ServiceDescription = text
	}
	sess.State = entities.StateCollectingAmount
	return sess, Reply{Text: msgAmount}
}

func (c *ConversationUseCase) handleCollectingAmount(sess entities.Session, text string) (entities.Session, Reply) {
	amount, err := ParseAmount(text)
	if err != nil {
		return sess, Reply{Text: msgInvalidAmount}
	}
	sess.Draft.Amount = amount
	sess.State = entities.StateCollectingDate
	return sess, Reply{
		Text:    msgDate,
		Buttons: []interfaces.Button{{ID: buttonUseToday, Title: "Hoje"}},
	}
}

// Date input is format-checked only; calendar validity is intentionally not
// enforced, the value flows downstream as an opaque string.
func (c *ConversationUseCase) handleCollectingDate(sess entities.Session, text, msg string) (entities.Session, Reply) {
	var date string
	if msg == "hoje" {
		date = c.now().Format("02/01/2006")
	} else if dateRe.MatchString(text) {
		date = text
	} else {
		return sess, Reply{Text: msgInvalidDate}
	}

	sess.Draft.Date = date
	sess.State = entities.StateConfirming
	return sess, Reply{Text: msgConfirmation(sess.Draft), Buttons: confirmButtons()}
}

func (c *ConversationUseCase) handleConfirming(ctx context.Context, sess entities.Session, msg string) (entities.Session, Reply) {
	switch msg {
	case "sim", "s":
		return c.confirmGeneration(ctx, sess)
	case "não", "nao", "n":
		sess.Draft = entities.ReceiptDraft{}
		sess.State = entities.StateCollectingClientName
		return sess, Reply{Text: msgRestart}
	default:
		return sess, Reply{Text: msgConfirmPrompt, Buttons: confirmButtons()}
	}
}

func (c *ConversationUseCase) confirmGeneration(ctx context.Context, sess entities.Session) (entities.Session, Reply) {
	can, err := c.users.CanGenerateReceipt(ctx, sess.Phone)
	if err != nil {
		log.Printf("[whatsapp][usecase] quota check failed phone=%s err=%v", sess.Phone, err)
		return sess, Reply{Text: msgGenericError}
	}
	if !can {
		return c.quotaExceededReply(ctx, sess)
	}

	result, err := c.receipts.Generate(ctx, sess.Phone, sess.Draft, entities.GeneratedViaWhatsApp)
	if err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			return c.quotaExceededReply(ctx, sess)
		}
		log.Printf("[whatsapp][usecase] generation failed phone=%s err=%v", sess.Phone, err)
		return sess, Reply{Text: msgGenericError}
	}

	sess.State = entities.StateCompleted
	sess.Draft = entities.ReceiptDraft{}
	return sess, Reply{Text: msgSuccess(result.ReceiptNumber, result.DownloadURL)}
}

func (c *ConversationUseCase) quotaExceededReply(ctx context.Context, sess entities.Session) (entities.Session, Reply) {
	text := msgQuotaExceededGeneric(c.publicURL)
	if stats, err := c.users.GetStats(ctx, sess.Phone); err == nil {
		text = msgQuotaExceeded(stats, c.publicURL)
	}
	sess = entities.NewSession(sess.Phone)
	return sess, Reply{Text: text}
}

func (c *ConversationUseCase) handleCompleted(sess entities.Session, user entities.User, msg string) (entities.Session, Reply) {
	if isGreeting(msg) {
		sess.State = entities.StateCollectingClientName
		sess.Draft = entities.ReceiptDraft{}
		return sess, Reply{Text: msgWelcome(user.FullName)}
	}
	return sess, Reply{Text: msgAlreadyCompleted}
}

func (c *ConversationUseCase) handleEditingProfile(sess entities.Session, user entities.User, msg string) (entities.Session, Reply) {
	switch {
	case strings.Contains(msg, "nome") || msg == "1":
		sess.State = entities.StateEditingUserName
		return sess, Reply{Text: msgEditName}
	case strings.Contains(msg, "documento") || msg == "2":
		sess.State = entities.StateEditingUserDocument
		return sess, Reply{Text: msgEditDocument}
	case strings.Contains(msg, "sair") || strings.Contains(msg, "voltar") || msg == "3":
		sess = entities.NewSession(sess.Phone)
		return sess, Reply{Text: msgBackToMenu}
	default:
		return sess, Reply{Text: msgProfileOptions(user), Buttons: profileMenuButtons()}
	}
}

func (c *ConversationUseCase) handleEditingUserName(ctx context.Context, sess entities.Session, text string) (entities.Session, Reply) {
	if text == "" {
		return sess, Reply{Text: msgPromptUserName}
	}

	current, err := c.users.CreateOrGet(ctx, sess.Phone)
	if err == nil {
		var updated entities.User
		updated, err = c.users.UpdateProfile(ctx, sess.Phone, text, current.CpfCnpj)
		if err == nil {
			sess = entities.NewSession(sess.Phone)
			return sess, Reply{Text: msgProfileUpdated(updated)}
		}
	}
	log.Printf("[whatsapp][usecase] name update failed phone=%s err=%v", sess.Phone, err)
	return sess, Reply{Text: "❌ Erro ao atualizar nome. Tente novamente.\n\nDigite seu novo nome completo:"}
}

func (c *ConversationUseCase) handleEditingUserDocument(ctx context.Context, sess entities.Session, user entities.User, text string) (entities.Session, Reply) {
	if text == "" {
		return sess, Reply{Text: msgPromptUserDocument}
	}

	updated, err := c.users.UpdateProfile(ctx, sess.Phone, user.FullName, text)
	if err != nil {
		log.Printf("[whatsapp][usecase] document update failed phone=%s err=%v", sess.Phone, err)
		return sess, Reply{Text: "❌ Erro ao atualizar documento. Tente novamente.\n\nDigite seu novo CPF ou CNPJ:"}
	}
	sess = entities.NewSession(sess.Phone)
	return sess, Reply{Text: msgProfileUpdated(updated)}
}

func confirmButtons() []interfaces.Button {
	return []interfaces.Button{
		{ID: buttonConfirmYes, Title: "Sim"},
		{ID: buttonConfirmNo, Title: "Não"},
	}
}

func profileMenuButtons() []interfaces.Button {
	return []interfaces.Button{
		{ID: buttonEditName, Title: "Nome"},
		{ID: buttonEditDocument, Title: "Documento"},
		{ID: buttonExitEdit, Title: "Sair"},
	}
}
