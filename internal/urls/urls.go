package urls

// Public pages referenced from command help and result screens.

// LandingPage is the public PHYA site that hosts the waitlist forms
const LandingPage = "https://phya.co.za"

// PrivacyPolicy explains how waitlist details are stored and used
const PrivacyPolicy = "https://phya.co.za/privacy"

// ProviderInfo describes the pilot programme for security providers,
// including which PSIRA grades are eligible.
const ProviderInfo = "https://phya.co.za/providers"

// PSIRARegistry is the regulator's site where providers can confirm
// their registration number and grade before applying.
const PSIRARegistry = "https://www.psira.co.za"
