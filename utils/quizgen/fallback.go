package quizgen

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"lexify/models/goal"
)

// wordSet holds the five fixed concepts of the offline question bank in one
// learning language.
type wordSet struct {
	Hello   string
	Goodbye string
	Thanks  string
	Please  string
	Yes     string
}

// templateSet holds the question texts for the five concepts in one native
// language.
type templateSet struct {
	Greeting string
	Farewell string
	Thanks   string
	Please   string
	Yes      string
}

var fallbackWords = map[string]wordSet{
	"Spanish":    {Hello: "Hola", Goodbye: "Adiós", Thanks: "Gracias", Please: "Por favor", Yes: "Sí"},
	"French":     {Hello: "Bonjour", Goodbye: "Au revoir", Thanks: "Merci", Please: "S'il vous plaît", Yes: "Oui"},
	"German":     {Hello: "Hallo", Goodbye: "Auf Wiedersehen", Thanks: "Danke", Please: "Bitte", Yes: "Ja"},
	"Italian":    {Hello: "Ciao", Goodbye: "Arrivederci", Thanks: "Grazie", Please: "Per favore", Yes: "Sì"},
	"Russian":    {Hello: "Привет", Goodbye: "До свидания", Thanks: "Спасибо", Please: "Пожалуйста", Yes: "Да"},
	"Japanese":   {Hello: "こんにちは", Goodbye: "さようなら", Thanks: "ありがとう", Please: "お願いします", Yes: "はい"},
	"Chinese":    {Hello: "你好", Goodbye: "再见", Thanks: "谢谢", Please: "请", Yes: "是"},
	"Korean":     {Hello: "안녕하세요", Goodbye: "안녕히 가세요", Thanks: "감사합니다", Please: "주세요", Yes: "네"},
	"Portuguese": {Hello: "Olá", Goodbye: "Adeus", Thanks: "Obrigado", Please: "Por favor", Yes: "Sim"},
	"Dutch":      {Hello: "Hallo", Goodbye: "Tot ziens", Thanks: "Dank je", Please: "Alsjeblieft", Yes: "Ja"},
	"English":    {Hello: "Hello", Goodbye: "Goodbye", Thanks: "Thank you", Please: "Please", Yes: "Yes"},
}

var fallbackTemplates = map[string]templateSet{
	"English": {
		Greeting: "What do you say when you greet someone?",
		Farewell: "What do you say when saying goodbye?",
		Thanks:   "How do you express gratitude or thanks?",
		Please:   "What word do you use to make a polite request?",
		Yes:      "What word means affirmative or agreement?",
	},
	"Spanish": {
		Greeting: "¿Qué dices cuando saludas a alguien?",
		Farewell: "¿Qué dices cuando te despides?",
		Thanks:   "¿Cómo expresas gratitud o agradecimiento?",
		Please:   "¿Qué palabra usas para hacer una petición educada?",
		Yes:      "¿Qué palabra significa afirmativo o acuerdo?",
	},
	"French": {
		Greeting: "Que dis-tu quand tu salues quelqu'un?",
		Farewell: "Que dis-tu quand tu dis au revoir?",
		Thanks:   "Comment exprimes-tu ta gratitude ou tes remerciements?",
		Please:   "Quel mot utilises-tu pour faire une demande polie?",
		Yes:      "Quel mot signifie affirmatif ou accord?",
	},
	"German": {
		Greeting: "Was sagst du, wenn du jemanden begrüßt?",
		Farewell: "Was sagst du, wenn du dich verabschiedest?",
		Thanks:   "Wie drückst du Dankbarkeit oder Dank aus?",
		Please:   "Welches Wort verwendest du für eine höfliche Bitte?",
		Yes:      "Welches Wort bedeutet Zustimmung oder Ja?",
	},
	"Italian": {
		Greeting: "Cosa dici quando saluti qualcuno?",
		Farewell: "Cosa dici quando dici addio?",
		Thanks:   "Come esprimi gratitudine o ringraziamenti?",
		Please:   "Quale parola usi per fare una richiesta gentile?",
		Yes:      "Quale parola significa affermativo o accordo?",
	},
	"Russian": {
		Greeting: "Что ты говоришь, когда приветствуешь кого-то?",
		Farewell: "Что ты говоришь, когда прощаешься?",
		Thanks:   "Как ты выражаешь благодарность?",
		Please:   "Какое слово ты используешь для вежливой просьбы?",
		Yes:      "Какое слово означает утверждение или согласие?",
	},
	"Japanese": {
		Greeting: "誰かに挨拶するとき、何と言いますか？",
		Farewell: "さよならを言うとき、何と言いますか？",
		Thanks:   "感謝の気持ちを表すとき、何と言いますか？",
		Please:   "丁寧にお願いするとき、何という言葉を使いますか？",
		Yes:      "肯定的な答えや同意を示す言葉は何ですか？",
	},
	"Chinese": {
		Greeting: "当你问候别人时，你说什么？",
		Farewell: "当你说再见时，你说什么？",
		Thanks:   "你如何表达感谢？",
		Please:   "你用什么词来进行礼貌的请求？",
		Yes:      "什么词表示肯定或同意？",
	},
	"Korean": {
		Greeting: "누군가에게 인사할 때 뭐라고 말하나요?",
		Farewell: "작별을 고할 때 뭐라고 말하나요?",
		Thanks:   "감사를 표현할 때 무엇이라고 말하나요?",
		Please:   "정중하게 요청할 때 어떤 단어를 사용하나요?",
		Yes:      "긍정적인 답변이나 동의를 나타내는 단어는 무엇인가요?",
	},
	"Portuguese": {
		Greeting: "O que você diz quando cumprimenta alguém?",
		Farewell: "O que você diz quando se despede?",
		Thanks:   "Como você expressa gratidão ou agradecimento?",
		Please:   "Qual palavra você usa para fazer um pedido educado?",
		Yes:      "Qual palavra significa afirmativo ou concordância?",
	},
	"Dutch": {
		Greeting: "Wat zeg je als je iemand begroet?",
		Farewell: "Wat zeg je als je afscheid neemt?",
		Thanks:   "Hoe druk je dankbaarheid of dank uit?",
		Please:   "Welk woord gebruik je voor een beleefd verzoek?",
		Yes:      "Welk woord betekent bevestigend of akkoord?",
	},
	"Hindi": {
		Greeting: "जब आप किसी का अभिवादन करते हैं तो क्या कहते हैं?",
		Farewell: "जब आप विदाई कहते हैं तो क्या कहते हैं?",
		Thanks:   "आप धन्यवाद या आभार कैसे व्यक्त करते हैं?",
		Please:   "विनम्र अनुरोध करने के लिए आप कौन सा शब्द इस्तेमाल करते हैं?",
		Yes:      "कौन सा शब्द सहमति या हाँ को दर्शाता है?",
	},
}

// FallbackGenerator is the deterministic offline question bank used when the
// AI generator errors. It has no I/O dependency and never fails: unknown
// learning languages get placeholder options, unknown native languages get
// English question templates.
type FallbackGenerator struct {
	shuffle bool
	rng     *rand.Rand
}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{
		shuffle: true,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *FallbackGenerator) Generate(day, duration int, learningLanguage, nativeLanguage string) ([]goal.QuizQuestion, error) {
	words := wordsFor(learningLanguage)
	templates := templatesFor(nativeLanguage)
	difficulty := DifficultyFor(day, duration)

	base := []goal.QuizQuestion{
		{
			Question:      templates.Greeting,
			Options:       []string{words.Hello, words.Goodbye, words.Thanks, words.Please},
			CorrectAnswer: 0,
			Difficulty:    difficulty,
			Concept:       "greetings",
		},
		{
			Question:      templates.Thanks,
			Options:       []string{words.Thanks, words.Hello, words.Goodbye, words.Yes},
			CorrectAnswer: 0,
			Difficulty:    difficulty,
			Concept:       "basic_phrases",
		},
		{
			Question:      templates.Farewell,
			Options:       []string{words.Goodbye, words.Hello, words.Please, words.Thanks},
			CorrectAnswer: 0,
			Difficulty:    difficulty,
			Concept:       "greetings",
		},
		{
			Question:      templates.Please,
			Options:       []string{words.Please, words.Thanks, words.Yes, words.Goodbye},
			CorrectAnswer: 0,
			Difficulty:    difficulty,
			Concept:       "politeness",
		},
		{
			Question:      templates.Yes,
			Options:       []string{words.Yes, words.Hello, words.Thanks, words.Goodbye},
			CorrectAnswer: 0,
			Difficulty:    difficulty,
			Concept:       "basic_responses",
		},
	}

	if f.shuffle {
		for i := range base {
			base[i].Options, base[i].CorrectAnswer = f.shuffleOptions(base[i].Options, base[i].CorrectAnswer)
		}
	}

	return base, nil
}

// shuffleOptions runs a Fisher-Yates shuffle over the options and returns
// the new index of the correct answer.
func (f *FallbackGenerator) shuffleOptions(options []string, correct int) ([]string, int) {
	shuffled := make([]string, len(options))
	copy(shuffled, options)

	correctText := options[correct]
	for i := len(shuffled) - 1; i > 0; i-- {
		j := f.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	for i, opt := range shuffled {
		if opt == correctText {
			return shuffled, i
		}
	}
	return shuffled, 0
}

func wordsFor(learningLanguage string) wordSet {
	if ws, ok := fallbackWords[canonicalLanguage(learningLanguage)]; ok {
		return ws
	}
	return wordSet{
		Hello:   "Hello in " + learningLanguage,
		Goodbye: "Goodbye in " + learningLanguage,
		Thanks:  "Thank you in " + learningLanguage,
		Please:  "Please in " + learningLanguage,
		Yes:     "Yes in " + learningLanguage,
	}
}

func templatesFor(nativeLanguage string) templateSet {
	if ts, ok := fallbackTemplates[canonicalLanguage(nativeLanguage)]; ok {
		return ts
	}
	return fallbackTemplates["English"]
}

func canonicalLanguage(language string) string {
	if language == "" {
		return "English"
	}
	first, size := utf8.DecodeRuneInString(language)
	return string(unicode.ToUpper(first)) + strings.ToLower(language[size:])
}
