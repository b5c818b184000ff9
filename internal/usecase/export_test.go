package usecase

// TopSellersLimit re-exports topSellersLimit for external test packages.
const TopSellersLimit = topSellersLimit

// OrderNumberAttempts re-exports orderNumberAttempts for external test packages.
const OrderNumberAttempts = orderNumberAttempts

// MaxPageSize re-exports maxPageSize for external test packages.
const MaxPageSize = maxPageSize
