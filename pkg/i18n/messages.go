package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Flash messages shown on the signup page after a failed OAuth signup.
const (
	MsgFacebookFailed = "We weren't able to get your email from Facebook, please use one of the other options for signing up."
	MsgGitHubNoEmail  = `You have not defined a public email in your GitHub account, please <a href="http://github.com/settings/profile">define it</a> and try again, or use one of the other options for signing up.`
	MsgGitHubFailed   = "We weren't able to get your information from GitHub, please use one of the other options for signing up."
	MsgGoogleFailed   = "We weren't able to get your information from Google, please use one of the other options for signing up."
	MsgProviderFailed = "We weren't able to sign you up, please use one of the other options for signing up."
)

var portuguese = map[string]string{
	MsgFacebookFailed: "Não conseguimos obter seu email do Facebook, por favor use uma das outras opções de cadastro.",
	MsgGitHubNoEmail:  `Você não definiu um email público na sua conta do GitHub, por favor <a href="http://github.com/settings/profile">defina-o</a> e tente novamente, ou use uma das outras opções de cadastro.`,
	MsgGitHubFailed:   "Não conseguimos obter suas informações do GitHub, por favor use uma das outras opções de cadastro.",
	MsgGoogleFailed:   "Não conseguimos obter suas informações do Google, por favor use uma das outras opções de cadastro.",
	MsgProviderFailed: "Não conseguimos realizar seu cadastro, por favor use uma das outras opções de cadastro.",

	"Sign up for the beta":                  "Cadastre-se no beta",
	"First name":                            "Nome",
	"Last name":                             "Sobrenome",
	"Email":                                 "Email",
	"Sign up":                               "Cadastrar",
	"Sign up with Facebook":                 "Cadastrar com Facebook",
	"Sign up with GitHub":                   "Cadastrar com GitHub",
	"Sign up with Google":                   "Cadastrar com Google",
	"or":                                    "ou",
	"About":                                 "Sobre",
	"Community":                             "Comunidade",
	"Terms of service":                      "Termos de serviço",
	"Try it":                                "Experimente",
	"This field is required.":               "Este campo é obrigatório.",
	"Invalid email address.":                "Endereço de email inválido.",
	"Thank you for signing up!":             "Obrigado por se cadastrar!",
	"You are already registered.":           "Você já está cadastrado.",
	"Thanks for your answers!":              "Obrigado pelas suas respostas!",
	"Help us know you better":               "Ajude-nos a conhecer você melhor",
	"What do you work with?":                "Com o que você trabalha?",
	"Country":                               "País",
	"Organization":                          "Organização",
	"Why do you want to try it?":            "Por que você quer experimentar?",
	"Send":                                  "Enviar",
	"Developer":                             "Desenvolvedor",
	"Operations":                            "Operações",
	"Manager":                               "Gerente",
	"Student":                               "Estudante",
	"Other":                                 "Outro",
	"An open source platform as a service.": "Uma plataforma como serviço de código aberto.",
	"Join the mailing list and the IRC channel.": "Participe da lista de emails e do canal de IRC.",
	"Language": "Idioma",
}

func init() {
	for key, msg := range portuguese {
		if err := message.SetString(language.Portuguese, key, msg); err != nil {
			panic(err)
		}
	}
}
