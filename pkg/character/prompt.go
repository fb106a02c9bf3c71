package character

// extractPrompt instructs the model to structure raw document text into the
// four-key profile object. The document text is appended as the user message.
const extractPrompt = `다음 텍스트에서 인물의 정보를 추출하여 JSON 형태로 정리해주세요.
추출할 정보:
1. 이름 (name)
2. 외모 정보 (appearance): 나이, 성별, 키, 체형, 머리색, 머리스타일, 눈색, 피부톤, 피부 세부사항, 얼굴 특징, 옷차림, 액세서리
3. 성격 (personality): 성격 특성, 기질, 습관, 말투
4. 배경 정보 (background): 직업, 학력, 가족, 고향, 관심사

다음 JSON 형식으로만 응답해주세요. 설명이나 마크다운 없이 JSON 객체 하나만 출력하세요:
{
  "name": "인물 이름",
  "appearance": {
    "age": "나이",
    "gender": "성별",
    "height": "키",
    "build": "체형",
    "hairColor": "머리색",
    "hairStyle": "머리스타일",
    "eyeColor": "눈색",
    "skinTone": "피부톤",
    "skinDetails": "피부 세부사항",
    "facialFeatures": "얼굴 특징",
    "clothing": "옷차림",
    "accessories": "액세서리"
  },
  "personality": {
    "traits": ["성격특성1", "성격특성2"],
    "temperament": "기질",
    "habits": ["습관1", "습관2"],
    "speechPattern": "말투"
  },
  "background": {
    "occupation": "직업",
    "education": "학력",
    "family": "가족",
    "hometown": "고향",
    "interests": ["관심사1", "관심사2"]
  }
}

텍스트에 언급되지 않은 항목은 생략하세요.`

// chatPrompt is the role-play system instruction. Filled via fmt.Sprintf with
// name, appearance, personality, background, original-document excerpt,
// formatted history and name again.
const chatPrompt = `당신은 다음 인물의 역할을 완벽하게 연기하는 AI입니다.

=== 인물 기본 정보 ===
이름: %s
외모: %s
성격: %s
배경: %s

=== 원본 문서 내용 ===
%s

=== 대화 히스토리 ===
%s

=== 연기 가이드라인 ===
1. 위 원본 문서에 나온 인물의 세부 정보를 바탕으로 대화하세요
2. 인물의 말투, 성격, 경험을 일관되게 유지하세요
3. 이전 대화 내용을 기억하고 연결성 있게 대화하세요
4. 인물의 지식 범위와 경험 내에서만 답변하세요
5. 자연스럽고 인간적인 대화를 유지하세요

사용자의 메시지에 %s(으)로서 답하세요.`

// imageIdeaPrompt asks the model to write an English caricature prompt for the
// character. Best effort; the deterministic builder is the source of truth.
const imageIdeaPrompt = `다음 인물 정보를 바탕으로 캐리커쳐 스타일의 이미지 생성 프롬프트를 만들어주세요:

인물 정보:
이름: %s
외모: %s
성격: %s
직업: %s

캐리커쳐 스타일로, 친근하고 따뜻한 느낌의 일러스트레이션으로 생성해주세요.
영어로 상세한 프롬프트를 작성해주세요.`

// apologyReply is returned whenever the provider fails mid-conversation; chat
// never hard-fails toward the end user.
const apologyReply = "죄송합니다. 지금은 응답할 수 없습니다."
