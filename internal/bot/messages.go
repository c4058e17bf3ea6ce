package bot

// User-facing reply texts. All replies use Telegram Markdown.
const (
	msgWelcome = "Hello there! 👋 I'm *Coinverter*, your friendly currency sidekick. 💱\n\n" +
		"Here's how to get started:\n" +
		"1. /from — tell me which currency you're converting *from*\n" +
		"2. /to — pick up to 3 currencies to convert *to*\n" +
		"3. Send me any amount and I'll do the math! 🧮\n\n" +
		"Type /help anytime to see everything I can do. 😊"

	msgHelp = "Here's everything I can do: 🤖\n\n" +
		"/from — set your input currency (code, country code, or country name)\n" +
		"/to — add an output currency (up to 3)\n" +
		"/getcurrencies — show your current setup\n" +
		"/deletecurrency — remove an output currency\n" +
		"/convert — convert an amount\n\n" +
		"Shortcuts: just send me a number and I'll convert it right away. " +
		"You can also share your location 📍 and I'll set your input currency from it!"

	msgUnknownCommand = "Hmm, I didn't quite catch that. 😅\n\n" +
		"No worries! Type /help to see the list of available commands. I'm here to assist! 😊"

	msgGenericError = "Oops, something went wrong! 😕\n\n" +
		"Don't worry, please try again later and we'll get things back on track. 😊"

	msgRatesUnavailable = "Exchange rates are taking a little break right now. 😴\n\n" +
		"Please try again in a few minutes!"

	msgRateNotFound = "I couldn't find exchange rates for that currency pair. 😕\n\n" +
		"Double-check your currencies with /getcurrencies and try again."

	msgFromPrompt = "Which currency are you converting *from*? 💱\n\n" +
		"Send me a currency code (*SGD*), a country code (*SG*), or a country name (*Singapore*) — " +
		"or pick one below:"

	msgFromInvalid = "I don't recognise that currency or country. 😅\n\n" +
		"Try a code like *SGD*, a country code like *SG*, or a country name like *Singapore* — " +
		"or pick one below:"

	msgFromSet = "%s *%s* is now your input currency! ✅\n\n" +
		"Next, use /to to choose up to 3 output currencies."

	msgFromLocation = "Thanks for sharing your location! 📍 You're in *%s*."

	msgToPrompt = "Which currency should I convert *to*? 💱\n\n" +
		"Send */to* followed by a currency code, country code, or country name — or pick one below:"

	msgToInvalid = "I don't recognise that currency or country. 😅\n\n" +
		"Try */to SGD*, */to SG*, or */to Singapore* — or pick one below:"

	msgToSet = "%s *%s* added to your output currencies! ✅\n\nYou're converting to:\n\n%s"

	msgToLimit = "You already have %d output currencies — that's the max! 😅\n\n" +
		"Remove one first by tapping below:"

	msgConvertInvalid = "That doesn't look like a number I can convert. 🤔\n\n" +
		"Send me an amount like *100* or *49.99* — or pick one below:"

	msgConvertNoInput = "I don't know what currency you're converting *from* yet! 😅\n\n" +
		"Set it with /from, or pick one below:"

	msgConvertNoOutput = "You haven't picked any currencies to convert *to* yet! 😅\n\n" +
		"Add one with /to, or pick one below:"

	msgConvertRejected = "I can't convert that: %s. 😅"

	msgConvertResult = "%s\n\nconverts to:\n\n%s"

	msgCurrenciesNone = "You haven't set up any currencies yet! 😊\n\n" +
		"Start with /from to choose your input currency."

	msgCurrenciesNoOutput = "Your input currency is %s *%s*.\n\n" +
		"You haven't picked any output currencies yet — add some with /to!"

	msgCurrenciesNoInput = "You're converting to:\n\n%s\n" +
		"But I don't know your input currency yet — set it with /from!"

	msgCurrenciesBoth = "Here's your setup: 💱\n\nFrom: %s *%s*\n\nTo:\n\n%s"

	msgDeleteNone = "You don't have any output currencies to remove! 😊\n\n" +
		"Add some with /to — or pick one below:"

	msgDeletePrompt = "Which output currency should I remove? Tap one below:"

	msgDeleteDone = "%s *%s* removed from your output currencies. ✅"
)
