package usecase

import (
	"fmt"
	"strings"

	"recibozap/internal/domain/entities"
)

// Bot copy (pt-BR). Kept in one place so the state machine reads as pure flow.

const msgFirstTimeSetup = `🎉 Olá! Bem-vindo ao *ReciboZap*!

Como é seu primeiro acesso, vou precisar de algumas informações básicas para personalizar seus recibos.

Por favor, me diga seu *nome completo*:`

const msgUserDocument = `Perfeito! Agora preciso do seu *CPF ou CNPJ*:

💡 Exemplo: 123.456.789-00 ou 12.345.678/0001-90

ℹ️ Essas informações aparecerão nos seus recibos como prestador do serviço.`

const msgClientDocument = `Perfeito! Agora preciso do *CPF ou CNPJ* do cliente:

💡 Exemplo: 123.456.789-00 ou 12.345.678/0001-90`

const msgServiceName = `Ótimo! Agora me conte qual foi o *nome do serviço* prestado:

💡 Exemplo: "Consultoria em Marketing Digital" ou "Desenvolvimento de Website"`

const msgServiceDescription = `Excelente! Agora você pode me dar uma *descrição mais detalhada* do serviço (opcional):

💡 Você pode enviar "pular" se não quiser adicionar descrição.`

const msgAmount = `Perfeito! Agora me diga o *valor* do serviço:

💡 Exemplo: 1500 ou 1500.50`

const msgDate = `Quase terminando! Qual a *data* do serviço?

💡 Formato: DD/MM/AAAA (exemplo: 23/07/2025)
💡 Ou envie "hoje" para usar a data atual`

const msgInvalidAmount = `❌ Valor inválido. Por favor, digite um valor numérico válido (exemplo: 1500 ou 1500.50):`

const msgInvalidDate = `❌ Data inválida. Use o formato DD/MM/AAAA (exemplo: 23/07/2025) ou digite "hoje":`

const msgGenericError = `😔 Ops! Algo deu errado.

Digite *RECOMEÇAR* para tentar novamente.`

const msgRestart = `🔄 Vamos recomeçar!

Me diga o *nome completo do seu cliente*:`

const msgEditName = `✏️ *Alterar Nome*

Digite seu novo nome completo:`

const msgEditDocument = `✏️ *Alterar CPF/CNPJ*

Digite seu novo CPF ou CNPJ:`

const msgBackToMenu = `👋 Voltando ao menu principal.

Digite *OI* para criar um recibo.`

const msgAlreadyCompleted = `Seu recibo já foi criado! Digite *OI* para criar um novo recibo.`

const msgHelp = `Olá! Digite *OI* para começar a criar seu recibo! 😊

💡 *Outros comandos:*
• *STATUS* - Ver informações da conta
• *DASHBOARD* - Ver estatísticas e resumo
• *HISTÓRICO* - Ver seus recibos anteriores
• *RELATÓRIO* - Relatório financeiro
• *PERFIL* - Editar seus dados
• *UPGRADE* - Ver planos disponíveis`

const msgConfirmPrompt = `Por favor, responda com *SIM* ou *NÃO*:`

func msgWelcome(name string) string {
	if name == "" {
		name = "Usuário"
	}
	return fmt.Sprintf(`🎉 Olá novamente, *%s*!

Vou te ajudar a criar um novo recibo válido juridicamente.

Para começar, me diga o *nome completo do seu cliente*:`, name)
}

func msgProfileComplete(name string) string {
	return fmt.Sprintf(`✅ *Perfil configurado com sucesso!*

Olá, %s! Agora você pode criar recibos profissionais.

Para começar seu primeiro recibo, me diga o *nome completo do seu cliente*:`, name)
}

func msgConfirmation(d entities.ReceiptDraft) string {
	description := d.ServiceDescription
	if description == "" {
		description = "Não informado"
	}
	return fmt.Sprintf(`🔍 *Conferindo os dados do seu recibo:*

👤 *Cliente:* %s
📄 *CPF/CNPJ:* %s
🔧 *Serviço:* %s
📝 *Descrição:* %s
💰 *Valor:* R$ %s
📅 *Data:* %s

Está tudo correto? Responda:
✅ *SIM* - para gerar o recibo
❌ *NÃO* - para recomeçar`, d.ClientName, d.ClientDocument, d.ServiceName, description, d.Amount, d.Date)
}

func msgSuccess(number, downloadURL string) string {
	return fmt.Sprintf(`🎉 *Recibo %s criado com sucesso!*

Seu documento foi gerado e assinado digitalmente.

🔗 Baixe o PDF aqui:
%s

💚 Obrigado por usar o ReciboZap!`, number, downloadURL)
}

func msgProfileOptions(u entities.User) string {
	name := u.FullName
	if name == "" {
		name = "Não informado"
	}
	document := u.CpfCnpj
	if document == "" {
		document = "Não informado"
	}
	return fmt.Sprintf(`⚙️ *Meu Perfil*

*Dados atuais:*
👤 Nome: %s
📄 CPF/CNPJ: %s

*Opções:*
1️⃣ Digite *NOME* para alterar seu nome
2️⃣ Digite *DOCUMENTO* para alterar CPF/CNPJ
3️⃣ Digite *SAIR* para voltar ao menu principal`, name, document)
}

func msgProfileUpdated(u entities.User) string {
	return fmt.Sprintf(`✅ *Perfil atualizado com sucesso!*

*Novos dados:*
👤 Nome: %s
📄 CPF/CNPJ: %s

Digite *OI* para criar um recibo ou *PERFIL* para fazer mais alterações.`, u.FullName, u.CpfCnpj)
}

func msgStats(s UserStats) string {
	limit := fmt.Sprintf("%d", s.MonthlyLimit)
	if s.MonthlyLimit == entities.UnlimitedReceipts {
		limit = "∞"
	}
	status := string(s.SubscriptionStatus)
	if status == "" {
		status = "Ativo"
	}
	return fmt.Sprintf(`📊 *Status da sua conta:*

📋 *Plano atual:* %s
📄 *Recibos este mês:* %d/%s
💳 *Status:* %s

Digite *OI* para criar um recibo.`, s.PlanName, s.CurrentMonthUsage, limit, status)
}

const msgStatsUnavailable = `📊 *Status da conta:* Plano Gratuito (5 recibos/mês)

Digite *OI* para criar um recibo ou *UPGRADE* para ver planos.`

func msgPlans(publicURL string) string {
	var b strings.Builder
	b.WriteString("🚀 *Planos ReciboZap:*\n\n")
	for _, p := range entities.AllPlans() {
		if p.Unlimited() {
			fmt.Fprintf(&b, "⭐ *%s (R$ %d,%02d):* Recibos ilimitados\n", p.Name, p.Price/100, p.Price%100)
		} else if p.Price == 0 {
			fmt.Fprintf(&b, "🆓 *%s:* %d recibos/mês\n", p.Name, p.ReceiptsPerMonth)
		} else {
			fmt.Fprintf(&b, "💰 *%s (R$ %d,%02d):* %d recibos/mês\n", p.Name, p.Price/100, p.Price%100, p.ReceiptsPerMonth)
		}
	}
	fmt.Fprintf(&b, "\n👆 *Assine agora:*\n%s/plans\n\nDigite *OI* para criar um recibo.", publicURL)
	return b.String()
}

func msgQuotaExceeded(s UserStats, publicURL string) string {
	return fmt.Sprintf(`⚠️ *Limite atingido!*

Você já usou %d/%d recibos do plano %s este mês.

🚀 *Faça upgrade para continuar:*
%s/plans

Digite *OI* para criar um novo recibo quando fizer o upgrade.`, s.CurrentMonthUsage, s.MonthlyLimit, s.PlanName, publicURL)
}

func msgQuotaExceededGeneric(publicURL string) string {
	return fmt.Sprintf(`⚠️ *Limite de recibos atingido!*

Para continuar gerando recibos, faça upgrade do seu plano:
%s/plans

Digite *OI* quando fizer o upgrade para criar novos recibos.`, publicURL)
}

func msgDashboard(d Dashboard, publicURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `📊 *Seu Dashboard ReciboZap:*

📈 *Resumo Geral:*
• Total de recibos: %d
• Valor total: R$ %.2f
• Ticket médio: R$ %.2f

📅 *Este mês:*
• Recibos: %d
• Faturado: R$ %.2f
`, d.Summary.TotalReceipts, d.Summary.TotalAmount, d.Summary.AvgReceiptValue, d.Summary.ThisMonthReceipts, d.Summary.ThisMonthAmount)
	if len(d.TopServices) > 0 {
		b.WriteString("\n🏆 *Top serviços:*\n")
		for i, s := range d.TopServices {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "%d. %s (%d recibos)\n", i+1, s.Name, s.Count)
		}
	}
	fmt.Fprintf(&b, "\n🔗 *Dashboard completo:*\n%s/dashboard\n\nDigite *HISTÓRICO* para ver seus recibos ou *OI* para criar novo.", publicURL)
	return b.String()
}

func msgHistory(receipts []entities.Receipt, publicURL string) string {
	if len(receipts) == 0 {
		return `📄 *Você ainda não possui recibos.*

Digite *OI* para criar seu primeiro recibo!`
	}
	var b strings.Builder
	b.WriteString("📄 *Seus últimos recibos:*\n\n")
	for _, r := range receipts {
		fmt.Fprintf(&b, "• %s - %s - R$ %.2f\n", r.Number, r.ClientName, r.Amount)
	}
	fmt.Fprintf(&b, "\n🔗 *Ver histórico completo:*\n%s/receipts\n\nDigite *DASHBOARD* para ver estatísticas ou *OI* para criar novo recibo.", publicURL)
	return b.String()
}

func msgReport(r FinancialReport, publicURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `📋 *Relatório Financeiro:*

📊 *Resumo:*
• Total de recibos: %d
• Valor total: R$ %.2f
• Ticket médio: R$ %.2f
`, r.Summary.TotalReceipts, r.Summary.TotalAmount, r.Summary.AvgReceiptValue)
	if len(r.ByService) > 0 {
		b.WriteString("\n🔧 *Por serviço:*\n")
		for i, s := range r.ByService {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "• %s: %d recibos (R$ %.2f)\n", s.Name, s.Count, s.Amount)
		}
	}
	fmt.Fprintf(&b, "\n🔗 *Relatório completo:*\n%s/reports", publicURL)
	return b.String()
}

const msgPromptUserName = `Por favor, digite seu nome completo:`
const msgPromptUserDocument = `Por favor, digite seu CPF ou CNPJ:`
const msgPromptClientName = `Por favor, digite o nome completo do seu cliente:`
const msgPromptClientDocument = `Por favor, digite o CPF ou CNPJ do cliente:`
const msgPromptServiceName = `Por favor, digite o nome do serviço prestado:`

const msgProfileSaveError = `❌ Erro ao salvar perfil. Tente novamente.

Digite seu CPF ou CNPJ:`

func msgIncompleteProfileIntro() string {
	return "🎉 Olá! Para começar, preciso que você complete seu perfil.\n\n" + msgFirstTimeSetup
}
