package queries

var (
	CourseResource = Resource{
		Name: "courses",
		Fields: map[string]Field{
			"id":              {Column: "id", Kind: KindUUID},
			"name":            {Column: "name", Kind: KindString, Filterable: true, Sortable: true},
			"slug":            {Column: "slug", Kind: KindString, Filterable: true},
			"description":     {Column: "description", Kind: KindString},
			"category":        {Column: "category", Kind: KindString, Filterable: true, Sortable: true},
			"price":           {Column: "price", Kind: KindDecimal, Filterable: true, Sortable: true},
			"discountAmount":  {Column: "discount_amount", Kind: KindDecimal},
			"discountApplied": {Column: "discount_applied", Kind: KindBool, Filterable: true},
			"totalSold":       {Column: "total_sold", Kind: KindInt, Filterable: true, Sortable: true},
			"rating":          {Column: "rating", Kind: KindDecimal, Filterable: true, Sortable: true},
			"isPublished":     {Column: "is_published", Kind: KindBool, Filterable: true},
			"createdAt":       {Column: "created_at", Kind: KindTime, Filterable: true, Sortable: true},
			"updatedAt":       {Column: "updated_at", Kind: KindTime, Sortable: true},
		},
	}

	TransactionResource = Resource{
		Name: "transactions",
		Fields: map[string]Field{
			"id":            {Column: "t.id", Kind: KindUUID},
			"userId":        {Column: "t.user_id", Kind: KindUUID, Filterable: true},
			"userEmail":     {Column: "u.email", Kind: KindString},
			"courseId":      {Column: "t.course_id", Kind: KindUUID, Filterable: true},
			"courseName":    {Column: "c.name", Kind: KindString},
			"gateway":       {Column: "t.gateway", Kind: KindString, Filterable: true},
			"currency":      {Column: "t.currency", Kind: KindString},
			"basePrice":     {Column: "t.base_price", Kind: KindDecimal, Filterable: true, Sortable: true},
			"checkoutPrice": {Column: "t.checkout_price", Kind: KindDecimal, Filterable: true, Sortable: true},
			"couponCode":    {Column: "t.coupon_code", Kind: KindString, Filterable: true},
			"affiliateCode": {Column: "t.affiliate_code", Kind: KindString, Filterable: true},
			"inCashAmount":  {Column: "t.credit_amount", Kind: KindDecimal},
			"providerRef":   {Column: "t.provider_ref", Kind: KindString, Filterable: true},
			"paymentRef":    {Column: "t.payment_ref", Kind: KindString},
			"isPaid":        {Column: "t.is_paid", Kind: KindBool, Filterable: true},
			"paidAt":        {Column: "t.paid_at", Kind: KindTime, Filterable: true, Sortable: true},
			"createdAt":     {Column: "t.created_at", Kind: KindTime, Filterable: true, Sortable: true},
		},
	}

	CouponResource = Resource{
		Name: "coupons",
		Fields: map[string]Field{
			"id":                 {Column: "id", Kind: KindUUID},
			"code":               {Column: "code", Kind: KindString, Filterable: true, Sortable: true},
			"discountPercentage": {Column: "discount_percentage", Kind: KindDecimal, Filterable: true, Sortable: true},
			"maxUseTimes":        {Column: "max_use_times", Kind: KindInt, Filterable: true},
			"timesUsed":          {Column: "times_used", Kind: KindInt, Filterable: true, Sortable: true},
			"startDate":          {Column: "starts_at", Kind: KindTime, Filterable: true, Sortable: true},
			"expiryDate":         {Column: "expires_at", Kind: KindTime, Filterable: true, Sortable: true},
			"active":             {Column: "active", Kind: KindBool, Filterable: true},
			"createdAt":          {Column: "created_at", Kind: KindTime, Filterable: true, Sortable: true},
		},
	}

	AffiliateCodeResource = Resource{
		Name: "affiliateCodes",
		Fields: map[string]Field{
			"id":             {Column: "id", Kind: KindUUID},
			"code":           {Column: "code", Kind: KindString, Filterable: true, Sortable: true},
			"discountAmount": {Column: "discount_amount", Kind: KindDecimal, Filterable: true, Sortable: true},
			"maxUseTimes":    {Column: "max_use_times", Kind: KindInt, Filterable: true},
			"timesUsed":      {Column: "times_used", Kind: KindInt, Filterable: true, Sortable: true},
			"startDate":      {Column: "starts_at", Kind: KindTime, Filterable: true, Sortable: true},
			"expiryDate":     {Column: "expires_at", Kind: KindTime, Filterable: true, Sortable: true},
			"ownerId":        {Column: "owner_id", Kind: KindUUID, Filterable: true},
			"active":         {Column: "active", Kind: KindBool, Filterable: true},
			"createdAt":      {Column: "created_at", Kind: KindTime, Filterable: true, Sortable: true},
		},
	}

	ReviewResource = Resource{
		Name: "reviews",
		Fields: map[string]Field{
			"id":        {Column: "r.id", Kind: KindUUID},
			"userName":  {Column: "u.name", Kind: KindString},
			"rating":    {Column: "r.rating", Kind: KindInt, Filterable: true, Sortable: true},
			"comment":   {Column: "r.comment", Kind: KindString},
			"createdAt": {Column: "r.created_at", Kind: KindTime, Filterable: true, Sortable: true},
		},
	}

	ManualTransactionResource = Resource{
		Name: "manualTransactions",
		Fields: map[string]Field{
			"id":                  {Column: "id", Kind: KindUUID},
			"userName":            {Column: "user_name", Kind: KindString, Filterable: true, Sortable: true},
			"userEmail":           {Column: "user_email", Kind: KindString, Filterable: true},
			"userPhoneNumber":     {Column: "user_phone", Kind: KindString, Filterable: true},
			"courseName":          {Column: "course_name", Kind: KindString, Filterable: true, Sortable: true},
			"paymentGateway":      {Column: "gateway", Kind: KindString, Filterable: true},
			"transactionId":       {Column: "provider_ref", Kind: KindString, Filterable: true},
			"transactionCurrency": {Column: "currency", Kind: KindString, Filterable: true},
			"transactionAmount":   {Column: "amount", Kind: KindDecimal, Filterable: true, Sortable: true},
			"transactionDate":     {Column: "transacted_at", Kind: KindTime, Filterable: true, Sortable: true},
			"transactionRemarks":  {Column: "remarks", Kind: KindString},
			"comment":             {Column: "comment", Kind: KindString},
			"isPaid":              {Column: "is_paid", Kind: KindBool, Filterable: true},
			"couponCode":          {Column: "coupon_code", Kind: KindString, Filterable: true},
			"couponDiscount":      {Column: "coupon_discount", Kind: KindDecimal},
			"createdAt":           {Column: "created_at", Kind: KindTime, Filterable: true, Sortable: true},
			"updatedAt":           {Column: "updated_at", Kind: KindTime, Sortable: true},
		},
	}

	WebFormResource = Resource{
		Name: "webForms",
		Fields: map[string]Field{
			"id":                          {Column: "id", Kind: KindUUID},
			"name":                        {Column: "name", Kind: KindString, Filterable: true, Sortable: true},
			"email":                       {Column: "email", Kind: KindString, Filterable: true},
			"phone":                       {Column: "phone", Kind: KindString, Filterable: true},
			"formType":                    {Column: "form_type", Kind: KindString, Filterable: true, Sortable: true},
			"bookDemoCourse":              {Column: "book_demo_course", Kind: KindString, Filterable: true},
			"inquiryDescription":          {Column: "inquiry_description", Kind: KindString},
			"requestCourseTopic":          {Column: "request_course_topic", Kind: KindString},
			"contactUsTopic":              {Column: "contact_us_topic", Kind: KindString},
			"requestServerCloudServer":    {Column: "server_cloud", Kind: KindString, Filterable: true},
			"requestServerDuration":       {Column: "server_duration", Kind: KindString},
			"becomeInstructorCountry":     {Column: "instructor_country", Kind: KindString, Filterable: true},
			"becomeInstructorLinkedin":    {Column: "instructor_linkedin", Kind: KindString},
			"becomeInstructorDescription": {Column: "instructor_description", Kind: KindString},
			"createdAt":                   {Column: "created_at", Kind: KindTime, Filterable: true, Sortable: true},
			"updatedAt":                   {Column: "updated_at", Kind: KindTime, Sortable: true},
		},
	}
)
