package brief

import "testing"

func TestDetectSkipReply(t *testing.T) {
	tests := []struct {
		reply string
		want  bool
	}{
		{"I don't know", true},
		{"i dont know sorry", true},
		{"Not sure about that", true},
		{"no idea", true},
		{"Skip this", true},
		{"unsure", true},
		{"The lease started in March", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			if got := DetectSkipReply(tt.reply); got != tt.want {
				t.Errorf("DetectSkipReply(%q) = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestDetectGenerateNow(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"[GENERATE_NOW]", true},
		{"just generate it already", true},
		{"generate the brief now", true},
		{"generate anyway", true},
		{"can you generate a brief later", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := DetectGenerateNow(tt.query); got != tt.want {
				t.Errorf("DetectGenerateNow(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
