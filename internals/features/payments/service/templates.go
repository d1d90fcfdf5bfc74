package service

// MailTemplate is a rendered notification ready for the cloud mailer.
type MailTemplate struct {
	Subject string
	Text    string
	HTML    string
}

func UserCancelPaymentTemplate() MailTemplate {
	body := `Your payment for Alpha Prime Club registration has been cancelled <br/><br/>`
	return MailTemplate{
		Subject: "Payment cancelled for Alpha Prime Club registration",
		Text:    body,
		HTML:    body,
	}
}

func UserCancelPaymentViaReferenceTemplate(reference string) MailTemplate {
	body := `Your payment for Alpha Prime Club registration with reference - ` + reference + ` has been cancelled <br/><br/>`
	return MailTemplate{
		Subject: "Payment cancelled for Alpha Prime Club registration",
		Text:    body,
		HTML:    body,
	}
}

func UserCompletePaymentTemplate(reference, amount string) MailTemplate {
	body := `Your payment for Alpha Prime Club registration with reference - ` + reference + ` has been completed <br/><br/> Paid: ` + amount
	return MailTemplate{
		Subject: "Payment complete for Alpha Prime Club registration",
		Text:    body,
		HTML:    body,
	}
}
