package mail

import "fmt"

const otpHTML = `<body style="background-color:#ffffff;font-family:HelveticaNeue,Helvetica,Arial,sans-serif">
  <table align="center" role="presentation" width="100%%" style="max-width:37.5em;background-color:#ffffff;border:1px solid #eee;border-radius:5px;margin:0 auto;padding:68px 0">
    <tr style="width:100%%">
      <td>
        <p style="font-size:11px;margin:16px 8px;color:#0a85ea;font-weight:700;letter-spacing:0;text-transform:uppercase;text-align:center">
          Verify Your Email
        </p>
        <h1 style="color:#000;font-size:20px;font-weight:500;line-height:24px;text-align:center">
          Enter the following code to finish resetting your password
        </h1>
        <p style="font-size:32px;line-height:40px;margin:16px auto;color:#000;font-weight:700;letter-spacing:6px;text-align:center">
          %s
        </p>
        <p style="font-size:15px;line-height:23px;margin:0;color:#444;padding:0 40px;text-align:center">
          Not expecting this email? Ignore it if you did not request this code.
        </p>
      </td>
    </tr>
  </table>
</body>`

// OTPEmail builds the reset-challenge notification carrying the one-time
// code.
func OTPEmail(from, to, otp string) *Email {
	return &Email{
		Subject: "Reset Password OTP",
		From:    from,
		To:      []string{to},
		Body:    fmt.Sprintf("Enter the following code to finish resetting your password: %s", otp),
		HTML:    fmt.Sprintf(otpHTML, otp),
	}
}

// NewPasswordEmail delivers the regenerated password after a successful
// reset.
func NewPasswordEmail(from, to, password string) *Email {
	return &Email{
		Subject: "Reset Password Successfully",
		From:    from,
		To:      []string{to},
		Body:    fmt.Sprintf("This is your new password: %s. Please login to continue!", password),
	}
}
