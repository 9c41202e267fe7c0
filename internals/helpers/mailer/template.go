// file: internals/helpers/mailer/template.go
package mailer

import (
	"fmt"
	"strings"
)

// ReminderHTML merender template email reminder (porting 1:1 dari template lama).
// days <= 7 dianggap urgent (warna merah).
func ReminderHTML(daysRemaining int, programName, source, planDate, month, picName string) string {
	urgencyColor := "#ffc107"
	urgencyText := "🔔 Reminder"
	if daysRemaining <= 7 {
		urgencyColor = "#dc3545"
		urgencyText = "⚠️ URGENT"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 12px rgba(0,0,0,0.1);">
    <div style="background: linear-gradient(135deg, #e50914, #b20710); padding: 30px; text-align: center;">
      <h1 style="color: white; margin: 0; font-size: 24px;">🔔 HSE Program Reminder</h1>
      <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 14px;">Automated Notification</p>
    </div>
    <div style="padding: 30px;">
      <div style="background: %[1]s22; border-left: 4px solid %[1]s; padding: 15px; margin: 0 0 20px 0; border-radius: 4px;">
        <strong style="color: %[1]s;">%[2]s: %[3]d Days Remaining</strong>
        <p style="margin: 8px 0 0 0; color: #666;">The following HSE program requires your attention.</p>
      </div>
      <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 8px 0;"><span style="font-weight: 600; color: #666; display: inline-block; width: 100px;">Program:</span> <span style="color: #333; font-weight: 600;">%[4]s</span></p>
        <p style="margin: 8px 0;"><span style="font-weight: 600; color: #666; display: inline-block; width: 100px;">Source:</span> <span style="color: #333;">%[5]s</span></p>
        <p style="margin: 8px 0;"><span style="font-weight: 600; color: #666; display: inline-block; width: 100px;">Plan Date:</span> <span style="color: #e50914; font-weight: 600;">%[6]s</span></p>
        <p style="margin: 8px 0;"><span style="font-weight: 600; color: #666; display: inline-block; width: 100px;">Month:</span> <span style="color: #333;">%[7]s</span></p>
        <p style="margin: 8px 0;"><span style="font-weight: 600; color: #666; display: inline-block; width: 100px;">PIC:</span> <span style="color: #333;">%[8]s</span></p>
      </div>
      <p style="color: #555; line-height: 1.6;">Please ensure all preparations are on track for this program. If you have any questions or need to reschedule, please contact your HSE coordinator.</p>
      <div style="text-align: center; margin-top: 30px;">
        <a href="#" style="display: inline-block; background: linear-gradient(135deg, #e50914, #b20710); color: white; padding: 12px 30px; border-radius: 6px; text-decoration: none; font-weight: 600;">View in HSE System</a>
      </div>
    </div>
    <div style="background: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #666; border-top: 1px solid #eee;">
      <p style="margin: 0;">HSE Management System | Automated Reminder</p>
      <p style="margin: 8px 0 0 0; color: #999;">This is an automated message. Please do not reply directly.</p>
    </div>
  </div>
</body>
</html>
`, urgencyColor, urgencyText, daysRemaining, programName, source, planDate, strings.ToUpper(month), picName)
}
