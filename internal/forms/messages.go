package forms

var (
	MsgLoginFailed      = "로그인에 실패했습니다. 다시 시도해주세요."
	MsgServerError      = "서버 오류가 발생!!!!!!"
	MsgSubmitInProgress = "이미 요청을 처리하고 있습니다. 잠시만 기다려주세요."
	MsgSignupCompleted  = "회원가입이 성공적으로 완료되었습니다."
)
