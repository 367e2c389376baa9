package codec

// Encoder binds the Base64 alphabet and the text encoding chosen by configuration
type Encoder struct {
	URLSafe bool
	Text    TextEncoding
}

// NewEncoder creates an Encoder
func NewEncoder(urlSafe bool, text TextEncoding) *Encoder {
	return &Encoder{URLSafe: urlSafe, Text: text}
}

func (e *Encoder) EncodeBase64(data []byte) (string, error) {
	return EncodeBase64(data, e.URLSafe)
}

func (e *Encoder) DecodeBase64(encoded string) ([]byte, error) {
	return DecodeBase64(encoded, e.URLSafe)
}

// TextToBytes encodes text with the bound text encoding
func (e *Encoder) TextToBytes(text string) ([]byte, error) {
	return EncodeText(text, e.Text)
}

// BytesToText decodes bytes with the bound text encoding
func (e *Encoder) BytesToText(data []byte) (string, error) {
	return DecodeText(data, e.Text)
}
