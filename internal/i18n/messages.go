package i18n

var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.unauthorized":         "Unauthorized",
		"error.invalid_credentials":  "Invalid email or password",
		"error.api_key_required":     "API key is required",
		"error.invalid_api_key":      "Invalid API key",
		"error.forbidden":            "Forbidden",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.invalid_token":        "Invalid or expired token",
		"error.token_required":       "Authentication token is required",
		"error.timeout":              "Request timed out",
		"error.unavailable":          "Service temporarily unavailable",
		"error.location_not_found":   "Storage location not found",
		"error.pallet_not_found":     "Pallet type not found",
		"error.run_not_found":        "Optimization run not found",
		"error.user_not_found":       "User not found",
		"error.user_exists":          "A user with this email already exists",
		"error.invalid_sku":          "Invalid SKU",
		"error.configuration":        "The pallet cannot be placed in this storage location",
		"error.oracle_failure":       "Placement computation failed",
		"error.catalog_read_only":    "The catalog is read-only",
		"error.history_disabled":     "Optimization history is not enabled",
		"error.unsupported_format":   "Unsupported format",
		"error.payload_too_large":    "Uploaded file is too large",
		"error.import_failed":        "The file could not be imported",

		"success.optimized": "Optimization completed successfully",
		"success.imported":  "SKUs imported successfully",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.unauthorized":         "Não autorizado",
		"error.invalid_credentials":  "E-mail ou senha inválidos",
		"error.api_key_required":     "Chave de API é obrigatória",
		"error.invalid_api_key":      "Chave de API inválida",
		"error.forbidden":            "Proibido",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.invalid_token":        "Token inválido ou expirado",
		"error.token_required":       "Token de autenticação é obrigatório",
		"error.timeout":              "Tempo limite da requisição excedido",
		"error.unavailable":          "Serviço temporariamente indisponível",
		"error.location_not_found":   "Local de armazenagem não encontrado",
		"error.pallet_not_found":     "Tipo de palete não encontrado",
		"error.run_not_found":        "Execução de otimização não encontrada",
		"error.user_not_found":       "Usuário não encontrado",
		"error.user_exists":          "Já existe um usuário com este e-mail",
		"error.invalid_sku":          "SKU inválido",
		"error.configuration":        "O palete não cabe neste local de armazenagem",
		"error.oracle_failure":       "Falha no cálculo de posicionamento",
		"error.catalog_read_only":    "O catálogo é somente leitura",
		"error.history_disabled":     "O histórico de otimizações não está habilitado",
		"error.unsupported_format":   "Formato não suportado",
		"error.payload_too_large":    "Arquivo enviado é muito grande",
		"error.import_failed":        "Não foi possível importar o arquivo",

		"success.optimized": "Otimização concluída com sucesso",
		"success.imported":  "SKUs importados com sucesso",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.unauthorized":         "Niet geautoriseerd",
		"error.invalid_credentials":  "Ongeldig e-mailadres of wachtwoord",
		"error.api_key_required":     "API-sleutel is vereist",
		"error.invalid_api_key":      "Ongeldige API-sleutel",
		"error.forbidden":            "Verboden",
		"error.not_found":            "Niet gevonden",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":             "Conflict",
		"error.invalid_token":        "Ongeldig of verlopen token",
		"error.token_required":       "Authenticatietoken is vereist",
		"error.timeout":              "Time-out van het verzoek",
		"error.unavailable":          "Dienst tijdelijk niet beschikbaar",
		"error.location_not_found":   "Opslaglocatie niet gevonden",
		"error.pallet_not_found":     "Pallettype niet gevonden",
		"error.run_not_found":        "Optimalisatierun niet gevonden",
		"error.user_not_found":       "Gebruiker niet gevonden",
		"error.user_exists":          "Er bestaat al een gebruiker met dit e-mailadres",
		"error.invalid_sku":          "Ongeldige SKU",
		"error.configuration":        "De pallet past niet in deze opslaglocatie",
		"error.oracle_failure":       "Plaatsingsberekening mislukt",
		"error.catalog_read_only":    "De catalogus is alleen-lezen",
		"error.history_disabled":     "Optimalisatiegeschiedenis is niet ingeschakeld",
		"error.unsupported_format":   "Niet-ondersteund formaat",
		"error.payload_too_large":    "Geüpload bestand is te groot",
		"error.import_failed":        "Het bestand kon niet worden geïmporteerd",

		"success.optimized": "Optimalisatie succesvol voltooid",
		"success.imported":  "SKU's succesvol geïmporteerd",
	},
}
