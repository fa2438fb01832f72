package models

// User is an account backed by a Kakao identity. Users are created on first
// login and keyed by KakaoID everywhere; the nickname is display-only.
type User struct {
	// KakaoID is the opaque stable identifier issued by Kakao.
	KakaoID string `json:"kakaoId"`

	// Nickname is the Kakao profile nickname. It is mutable and must never
	// be used to match debt or expense records.
	Nickname string `json:"profile_nickname"`

	// ProfileImage is the Kakao profile image URL.
	ProfileImage string `json:"profile_image"`

	// CreatedAt is the Unix timestamp of first login. Not part of the API shape.
	CreatedAt int64 `json:"-"`
}
