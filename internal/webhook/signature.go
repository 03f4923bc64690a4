package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// VerifySignature проверяет HMAC-SHA256 подпись сырого тела запроса.
// Заголовок ожидается в формате GitHub: "sha256=<hex>".
// Любая проблема (пустой секрет, пустая подпись, битый hex, несовпадение
// длины) означает отказ — никаких отдельных ошибок, чтобы не давать
// атакующему оракул
func VerifySignature(body []byte, signature string, secret []byte) bool {
	if len(secret) == 0 {
		return false
	}

	hexSig, ok := strings.CutPrefix(signature, "sha256=")
	if !ok {
		return false
	}

	received, err := hex.DecodeString(hexSig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := mac.Sum(nil)

	return subtle.ConstantTimeCompare(expected, received) == 1
}

// Sign возвращает значение заголовка подписи для данного тела.
// Используется в тестах
func Sign(body []byte, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
