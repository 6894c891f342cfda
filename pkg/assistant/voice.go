package assistant

// voice guarda o reconhecimento e a fala de uma sessão. Cada sessão tem os
// seus próprios estados: uma empresa ouvindo não bloqueia outra.
type voice struct {
	recognition *Recognition
	synthesis   *Synthesis
	refs        int
}

// holdVoice retorna o controle de voz da sessão, criando-o se preciso.
// Cada chamada deve ser seguida de dropVoice.
func (a *Assistant) holdVoice(session Session) *voice {
	key := session.key()

	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.voices[key]
	if !ok {
		v = &voice{
			recognition: NewRecognition(a.transcriber, a.events),
			synthesis:   NewSynthesis(a.synthesizer, a.locale, a.events),
		}
		a.voices[key] = v
	}
	v.refs++
	return v
}

// dropVoice libera o controle de voz; sem uso, ele é descartado
func (a *Assistant) dropVoice(session Session) {
	key := session.key()

	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.voices[key]
	if !ok {
		return
	}
	v.refs--
	if v.refs <= 0 {
		delete(a.voices, key)
	}
}

func (a *Assistant) activeVoice(session Session) (*voice, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.voices[session.key()]
	return v, ok
}

// StopListening interrompe a captura de voz da sessão, se houver
func (a *Assistant) StopListening(session Session) {
	if v, ok := a.activeVoice(session); ok {
		v.recognition.Stop()
	}
}

// CancelSpeech interrompe a fala da sessão, se houver
func (a *Assistant) CancelSpeech(session Session) {
	if v, ok := a.activeVoice(session); ok {
		v.synthesis.Cancel()
	}
}

// Listening informa se a sessão está capturando voz
func (a *Assistant) Listening(session Session) bool {
	v, ok := a.activeVoice(session)
	return ok && v.recognition.State() == RecognitionListening
}

// Speaking informa se a resposta da sessão está sendo falada
func (a *Assistant) Speaking(session Session) bool {
	v, ok := a.activeVoice(session)
	return ok && v.synthesis.State() == SynthesisSpeaking
}

// speak inicia a fala da resposta sem bloquear a conversa
func (a *Assistant) speak(session Session, text string) {
	if a.synthesizer == nil {
		return
	}

	v := a.holdVoice(session)
	done := v.synthesis.Speak(session, text)
	go func() {
		<-done
		a.dropVoice(session)
	}()
}
