package client

// GraphQL documents for every supported operation. Each document requests
// exactly the fields its result shape decodes.

const fragmentPayloadError = `
fragment PayloadErrorFields on PayloadError {
  fieldErrors {
    field
    messages
    __typename
  }
  message
  code
  __typename
}
`

const queryGetAccounts = `
query GetAccounts {
  accounts {
    ...AccountFields
    __typename
  }
  householdPreferences {
    id
    accountGroupOrder
    __typename
  }
}

fragment AccountFields on Account {
  id
  displayName
  syncDisabled
  deactivatedAt
  isHidden
  isAsset
  mask
  createdAt
  updatedAt
  displayLastUpdatedAt
  currentBalance
  displayBalance
  includeInNetWorth
  hideFromList
  dataProvider
  isManual
  transactionsCount
  holdingsCount
  order
  type {
    name
    display
    __typename
  }
  subtype {
    name
    display
    __typename
  }
  institution {
    id
    name
    primaryColor
    url
    __typename
  }
  __typename
}
`

const queryGetAccountTypeOptions = `
query GetAccountTypeOptions {
  accountTypeOptions {
    type {
      name
      display
      group
      possibleSubtypes {
        display
        name
        __typename
      }
      __typename
    }
    subtype {
      name
      display
      __typename
    }
    __typename
  }
}
`

const queryGetAccountRecentBalances = `
query GetAccountRecentBalances($startDate: Date!) {
  accounts {
    id
    displayName
    recentBalances(startDate: $startDate)
    __typename
  }
}
`

const queryGetSnapshotsByAccountType = `
query GetSnapshotsByAccountType($startDate: Date!, $timeframe: Timeframe!) {
  snapshotsByAccountType(startDate: $startDate, timeframe: $timeframe) {
    accountType
    month
    balance
    __typename
  }
  accountTypes {
    name
    group
    __typename
  }
}
`

const queryGetAggregateSnapshots = `
query GetAggregateSnapshots($filters: AggregateSnapshotFilters) {
  aggregateSnapshots(filters: $filters) {
    date
    balance
    __typename
  }
}
`

const queryGetHoldings = `
query Web_GetHoldings($input: PortfolioInput) {
  portfolio(input: $input) {
    aggregateHoldings {
      edges {
        node {
          id
          quantity
          basis
          totalValue
          security {
            id
            name
            ticker
            currentPrice
            __typename
          }
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}
`

const queryGetAccountHistory = `
query AccountDetails_getAccount($id: UUID!) {
  account(id: $id) {
    id
    displayName
    isAsset
    __typename
  }
  snapshots: snapshotsForAccount(accountId: $id) {
    date
    signedBalance
    accountId
    accountName
    __typename
  }
}
`

const queryGetInstitutions = `
query Web_GetInstitutionSettings {
  credentials {
    id
    displayName
    institution {
      id
      name
      url
      status
      __typename
    }
    __typename
  }
}
`

const queryGetSubscriptionDetails = `
query GetSubscriptionDetails {
  subscription {
    id
    paymentSource
    referralCode
    isOnFreeTrial
    hasPremiumEntitlement
    trialEndsAt
    __typename
  }
}
`

const mutationCreateManualAccount = `
mutation Web_CreateManualAccount($input: CreateManualAccountMutationInput!) {
  createManualAccount(input: $input) {
    account {
      id
      __typename
    }
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationUpdateAccount = `
mutation Common_UpdateAccount($input: UpdateAccountMutationInput!) {
  updateAccount(input: $input) {
    account {
      id
      displayName
      __typename
    }
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationDeleteAccount = `
mutation Common_DeleteAccount($id: UUID!) {
  deleteAccount(id: $id) {
    deleted
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationForceRefreshAccounts = `
mutation Common_ForceRefreshAccountsMutation($input: ForceRefreshAccountsInput!) {
  forceRefreshAccounts(input: $input) {
    success
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const queryForceRefreshStatus = `
query ForceRefreshAccountsQuery {
  accounts {
    id
    hasSyncInProgress
    __typename
  }
}
`

const queryGetTransactionsList = `
query GetTransactionsList($offset: Int, $limit: Int, $filters: TransactionFilterInput, $orderBy: TransactionOrdering) {
  allTransactions(filters: $filters) {
    totalCount
    results(offset: $offset, limit: $limit, orderBy: $orderBy) {
      id
      ...TransactionOverviewFields
      __typename
    }
    __typename
  }
}

fragment TransactionOverviewFields on Transaction {
  id
  amount
  pending
  date
  hideFromReports
  plaidName
  notes
  isRecurring
  reviewStatus
  needsReview
  isSplitTransaction
  createdAt
  updatedAt
  category {
    id
    name
    __typename
  }
  merchant {
    name
    id
    transactionsCount
    __typename
  }
  account {
    id
    displayName
    __typename
  }
  tags {
    id
    name
    color
    order
    __typename
  }
  __typename
}
`

const queryGetTransactionDrawer = `
query GetTransactionDrawer($id: UUID!) {
  getTransaction(id: $id) {
    id
    amount
    pending
    date
    hideFromReports
    plaidName
    notes
    isRecurring
    reviewStatus
    needsReview
    isSplitTransaction
    createdAt
    updatedAt
    category {
      id
      name
      __typename
    }
    merchant {
      id
      name
      transactionsCount
      __typename
    }
    account {
      id
      displayName
      __typename
    }
    tags {
      id
      name
      color
      order
      __typename
    }
    __typename
  }
}
`

const queryGetTransactionsSummary = `
query GetTransactionsPage($filters: TransactionFilterInput) {
  aggregates(filters: $filters) {
    summary {
      avg
      count
      max
      maxExpense
      sum
      sumIncome
      sumExpense
      first
      last
      __typename
    }
    __typename
  }
}
`

const mutationCreateTransaction = `
mutation Common_CreateTransactionMutation($input: CreateTransactionMutationInput!) {
  createTransaction(input: $input) {
    errors {
      ...PayloadErrorFields
      __typename
    }
    transaction {
      id
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationUpdateTransaction = `
mutation Web_TransactionDrawerUpdateTransaction($input: UpdateTransactionMutationInput!) {
  updateTransaction(input: $input) {
    transaction {
      id
      amount
      pending
      date
      hideFromReports
      notes
      reviewStatus
      __typename
    }
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationDeleteTransaction = `
mutation Common_DeleteTransactionMutation($input: DeleteTransactionMutationInput!) {
  deleteTransaction(input: $input) {
    deleted
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const queryGetCategories = `
query GetCategories {
  categories {
    ...CategoryFields
    __typename
  }
}

fragment CategoryFields on Category {
  id
  order
  name
  systemCategory
  isSystemCategory
  isDisabled
  group {
    id
    name
    type
    __typename
  }
  __typename
}
`

const mutationCreateCategory = `
mutation Web_CreateCategory($input: CreateCategoryInput!) {
  createCategory(input: $input) {
    errors {
      ...PayloadErrorFields
      __typename
    }
    category {
      id
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationDeleteCategory = `
mutation Web_DeleteCategory($id: UUID!, $moveToCategoryId: UUID) {
  deleteCategory(id: $id, moveToCategoryId: $moveToCategoryId) {
    errors {
      ...PayloadErrorFields
      __typename
    }
    deleted
    __typename
  }
}
` + fragmentPayloadError

const queryGetCategoryGroups = `
query ManageGetCategoryGroups {
  categoryGroups {
    id
    name
    order
    type
    __typename
  }
}
`

const queryGetTags = `
query GetHouseholdTransactionTags {
  householdTransactionTags {
    id
    name
    color
    order
    __typename
  }
}
`

const mutationCreateTag = `
mutation Common_CreateTransactionTag($name: String!, $color: String!) {
  createTransactionTag(input: {name: $name, color: $color}) {
    tag {
      id
      name
      color
      order
      __typename
    }
    errors {
      ...PayloadErrorFields
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const mutationSetTransactionTags = `
mutation Web_SetTransactionTags($input: SetTransactionTagsInput!) {
  setTransactionTags(input: $input) {
    errors {
      ...PayloadErrorFields
      __typename
    }
    transaction {
      id
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const queryTransactionSplits = `
query TransactionSplitQuery($id: UUID!) {
  getTransaction(id: $id) {
    id
    amount
    splitTransactions {
      id
      amount
      notes
      category {
        id
        name
        __typename
      }
      merchant {
        id
        name
        __typename
      }
      __typename
    }
    __typename
  }
}
`

const mutationUpdateTransactionSplits = `
mutation Common_SplitTransactionMutation($input: UpdateTransactionSplitMutationInput!) {
  updateTransactionSplit(input: $input) {
    errors {
      ...PayloadErrorFields
      __typename
    }
    transaction {
      id
      hasSplitTransactions
      __typename
    }
    __typename
  }
}
` + fragmentPayloadError

const queryGetRecurringTransactions = `
query Web_GetUpcomingRecurringTransactionItems($startDate: Date!, $endDate: Date!, $filters: RecurringTransactionFilter) {
  recurringTransactionItems(startDate: $startDate, endDate: $endDate, filters: $filters) {
    stream {
      id
      frequency
      amount
      isApproximate
      merchant {
        id
        name
        logoUrl
        __typename
      }
      __typename
    }
    date
    isPast
    transactionId
    amount
    account {
      id
      displayName
      __typename
    }
    __typename
  }
}
`

const queryGetJointPlanningData = `
query Common_GetJointPlanningData($startDate: Date!, $endDate: Date!) {
  budgetSystem
  budgetData(startMonth: $startDate, endMonth: $endDate) {
    monthlyAmountsByCategory {
      category {
        id
        __typename
      }
      monthlyAmounts {
        month
        plannedCashFlowAmount
        plannedSetAsideAmount
        actualAmount
        remainingAmount
        previousMonthRolloverAmount
        rolloverType
        __typename
      }
      __typename
    }
    monthlyAmountsByCategoryGroup {
      categoryGroup {
        id
        __typename
      }
      monthlyAmounts {
        month
        plannedCashFlowAmount
        actualAmount
        remainingAmount
        __typename
      }
      __typename
    }
    totalsByMonth {
      month
      totalIncome {
        ...BudgetTotalsFields
        __typename
      }
      totalExpenses {
        ...BudgetTotalsFields
        __typename
      }
      totalFixedExpenses {
        ...BudgetTotalsFields
        __typename
      }
      totalFlexibleExpenses {
        ...BudgetTotalsFields
        __typename
      }
      totalNonMonthlyExpenses {
        ...BudgetTotalsFields
        __typename
      }
      __typename
    }
    __typename
  }
  categoryGroups {
    id
    name
    order
    type
    __typename
  }
}

fragment BudgetTotalsFields on BudgetTotals {
  actualAmount
  plannedAmount
  previousMonthRolloverAmount
  remainingAmount
  __typename
}
`

const mutationUpdateBudgetItem = `
mutation Common_UpdateBudgetItem($input: UpdateOrCreateBudgetItemMutationInput!) {
  updateOrCreateBudgetItem(input: $input) {
    budgetItem {
      id
      budgetAmount
      __typename
    }
    __typename
  }
}
`

const queryGetCashFlowPage = `
query Web_GetCashFlowPage($filters: TransactionFilterInput) {
  byCategory: aggregates(filters: $filters, groupBy: ["category"]) {
    groupBy {
      category {
        id
        name
        group {
          id
          type
          __typename
        }
        __typename
      }
      __typename
    }
    summary {
      sum
      __typename
    }
    __typename
  }
  byCategoryGroup: aggregates(filters: $filters, groupBy: ["categoryGroup"]) {
    groupBy {
      categoryGroup {
        id
        name
        type
        __typename
      }
      __typename
    }
    summary {
      sum
      __typename
    }
    __typename
  }
  byMerchant: aggregates(filters: $filters, groupBy: ["merchant"]) {
    groupBy {
      merchant {
        id
        name
        logoUrl
        __typename
      }
      __typename
    }
    summary {
      sumIncome
      sumExpense
      __typename
    }
    __typename
  }
  summary: aggregates(filters: $filters, fillEmptyValues: true) {
    summary {
      sumIncome
      sumExpense
      savings
      savingsRate
      __typename
    }
    __typename
  }
}
`

const queryGetCashFlowSummary = `
query Web_GetCashFlowSummary($filters: TransactionFilterInput) {
  summary: aggregates(filters: $filters, fillEmptyValues: true) {
    summary {
      sumIncome
      sumExpense
      savings
      savingsRate
      __typename
    }
    __typename
  }
}
`
