package validation

// signup
const (
	MsgNameRequired     = "이름을 입력해주세요!"
	MsgIDRequired       = "아이디를 입력해주세요!"
	MsgEmailInvalid     = "이메일을 입력해주세요!"
	MsgAgeNotNumber     = "나이는 숫자로 입력해주세요!"
	MsgAgeNotInteger    = "나이는 정수로 입력해주세요!"
	MsgAgeNegative      = "나이는 양수여야 합니다!"
	MsgAgeUnderage      = "19세 이상만 사용 가능합니다!"
	MsgAgeOutOfRange    = "나이를 올바르게 입력해주세요!"
	MsgPasswordTooShort = "최소 4자리 이상 입력해주세요!"
	MsgPasswordTooLong  = "최대 12자리까지 가능합니다!"
	MsgPasswordWeak     = "영어, 숫자, 특수문자를 모두 조합해 작성해주세요!"
	MsgPasswordMismatch = "비밀번호를 다시 입력해주세요!"
)

// login
const (
	MsgUsernameRequired      = "아이디를 입력해주세요!"
	MsgLoginPasswordTooShort = "비밀번호는 4자 이상이어야 합니다!"
)
