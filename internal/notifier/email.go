package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"frota/internal/money"
)

// Message is a rendered email ready to send.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

var damageEmail = template.Must(template.New("damage").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: Arial, sans-serif; color: #222;">
<p>Olá{{if .RecipientName}}, {{.RecipientName}}{{end}}.</p>
<p>Na vistoria de {{.InspectionDate}} foi registrada uma avaria no veículo <strong>{{.Plate}}</strong>{{if .Model}} ({{.Model}}){{end}}.</p>
<table style="border-collapse: collapse;">
<tr><td style="padding: 4px 12px 4px 0;">Descrição</td><td>{{.Description}}</td></tr>
<tr><td style="padding: 4px 12px 4px 0;">Valor estimado</td><td>{{.Amount}}</td></tr>
</table>
<p>Em caso de dúvidas, responda este email.</p>
<p>{{.Company}}</p>
</body>
</html>
`))

type damageEmailData struct {
	RecipientName  string
	InspectionDate string
	Plate          string
	Model          string
	Description    string
	Amount         string
	Company        string
}

// RenderDamageEmail builds the customer email for a damage notification.
func RenderDamageEmail(n Notification, company string) (Message, error) {
	if n.RecipientEmail == "" {
		return Message{}, fmt.Errorf("notification %s has no recipient", n.ID)
	}

	amount := "a definir"
	if n.EstimatedAmount > 0 {
		amount = money.FormatBRL(n.EstimatedAmount)
	}
	date := "data não informada"
	if !n.InspectionDate.IsZero() {
		date = n.InspectionDate.Format("02/01/2006")
	}

	var buf bytes.Buffer
	err := damageEmail.Execute(&buf, damageEmailData{
		RecipientName:  n.RecipientName,
		InspectionDate: date,
		Plate:          n.VehiclePlate,
		Model:          n.VehicleModel,
		Description:    n.Description,
		Amount:         amount,
		Company:        company,
	})
	if err != nil {
		return Message{}, fmt.Errorf("rendering notification %s: %w", n.ID, err)
	}

	return Message{
		To:      n.RecipientEmail,
		ToName:  n.RecipientName,
		Subject: fmt.Sprintf("Avaria registrada no veículo %s", n.VehiclePlate),
		HTML:    buf.String(),
	}, nil
}
