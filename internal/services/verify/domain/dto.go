package domain

// VerifyInput is the body of POST /auth/{platform}
type VerifyInput struct {
	Username string `json:"username" validate:"required,max=64,cphandle" example:"tourist"`
	Code     string `json:"code"     validate:"required,max=64,cptoken"  example:"XYZ123"`
}

// VerifyResponse is the data of a passed verification
type VerifyResponse struct {
	Verified  bool     `json:"verified"   example:"true"`
	Platform  Platform `json:"platform"   example:"codeforces"`
	Username  string   `json:"username"   example:"tourist"`
	AttemptID string   `json:"attempt_id" example:"6f1c1f6e-2b1a-4c1e-9f65-3b7f0d7a4c11"`
	Message   string   `json:"message"    example:"Authentication successful"`
}

// PlatformsResponse lists the platforms that can be verified
type PlatformsResponse struct {
	Platforms []Platform `json:"platforms"`
}
