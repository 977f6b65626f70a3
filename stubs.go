package telecomtest

// Configuration is the resource configuration reported by the environment.
// Only the locale is modeled.
type Configuration struct {
	Locale string
}

// AudioManager stands in for the platform audio service. State is settable
// so tests can steer audio-route-sensitive code.
type AudioManager struct {
	wiredHeadsetOn bool
	speakerOn      bool
}

// NewAudioManager creates an audio manager with everything off.
func NewAudioManager() *AudioManager {
	return &AudioManager{}
}

// IsWiredHeadsetOn reports whether a wired headset is simulated as plugged.
func (a *AudioManager) IsWiredHeadsetOn() bool {
	return a.wiredHeadsetOn
}

// SetWiredHeadsetOn simulates plugging or unplugging a wired headset.
func (a *AudioManager) SetWiredHeadsetOn(on bool) {
	a.wiredHeadsetOn = on
}

// IsSpeakerphoneOn reports whether speakerphone is simulated as active.
func (a *AudioManager) IsSpeakerphoneOn() bool {
	return a.speakerOn
}

// SetSpeakerphoneOn toggles the simulated speakerphone.
func (a *AudioManager) SetSpeakerphoneOn(on bool) {
	a.speakerOn = on
}

// TelephonyManager stands in for the platform telephony service.
type TelephonyManager struct {
	subscriptionID int
}

// NewTelephonyManager creates a telephony manager answering subscription 1
// for every account.
func NewTelephonyManager() *TelephonyManager {
	return &TelephonyManager{subscriptionID: 1}
}

// SubscriptionIDForAccount returns the fixed subscription ID regardless of
// account.
func (t *TelephonyManager) SubscriptionIDForAccount(account string) int {
	return t.subscriptionID
}

// SetSubscriptionID overrides the fixed subscription ID.
func (t *TelephonyManager) SetSubscriptionID(id int) {
	t.subscriptionID = id
}

// ContentResolver is the content resolution stub: providers are never
// available and releases never succeed.
type ContentResolver struct{}

// AcquireProvider always reports the provider absent.
func (c *ContentResolver) AcquireProvider(name string) (interface{}, bool) {
	return nil, false
}

// AcquireUnstableProvider always reports the provider absent.
func (c *ContentResolver) AcquireUnstableProvider(name string) (interface{}, bool) {
	return nil, false
}

// ReleaseProvider always reports failure.
func (c *ContentResolver) ReleaseProvider(provider interface{}) bool {
	return false
}

// ReleaseUnstableProvider always reports failure.
func (c *ContentResolver) ReleaseUnstableProvider(provider interface{}) bool {
	return false
}

// UnstableProviderDied accepts the death notification and does nothing.
func (c *ContentResolver) UnstableProviderDied(provider interface{}) {
}
