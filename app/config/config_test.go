package config

import "testing"

func TestResolveMailFrom(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{
			name: "explicit sender wins",
			cfg:  Config{MailProvider: "smtp", MailFrom: "Driveconn <ops@driveconn.io>", SMTPUsername: "bot@gmail.com"},
			want: "Driveconn <ops@driveconn.io>",
		},
		{
			name: "smtp falls back to the account",
			cfg:  Config{MailProvider: "smtp", SMTPUsername: "driveconn@gmail.com"},
			want: "Driveconn <driveconn@gmail.com>",
		},
		{
			name: "mailgun falls back to the sending domain",
			cfg:  Config{MailProvider: "mailgun", MailgunDomain: "mg.driveconn.io"},
			want: "Driveconn <no-reply@mg.driveconn.io>",
		},
		{
			name:    "smtp with no sender source fails",
			cfg:     Config{MailProvider: "smtp"},
			wantErr: true,
		},
		{
			name:    "mailgun with no sender source fails",
			cfg:     Config{MailProvider: "mailgun"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := resolveMailFrom(&tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.cfg.MailFrom != tc.want {
				t.Errorf("MailFrom = %q, want %q", tc.cfg.MailFrom, tc.want)
			}
		})
	}
}
