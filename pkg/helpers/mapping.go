package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/creator-commerce/pkg/mailer"
	mailtpl "github.com/oksasatya/creator-commerce/pkg/mailer/templates"
)

func SubjectFor(template string) string {
	switch strings.ToLower(template) {
	case mailtpl.Welcome:
		return "Welcome aboard"
	case mailtpl.OrderPlaced:
		return "Your order is confirmed"
	default:
		return "Notification"
	}
}

// EnsureRecipient copies job.To into Data["Email"] when the template data lacks it.
func EnsureRecipient(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
}
