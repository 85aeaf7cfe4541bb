package github

const queryRepoNames = `
query ($username: String!, $limit: Int!) {
  user(login: $username) {
    repositories(first: $limit, ownerAffiliations: OWNER, orderBy: {field: NAME, direction: ASC}) {
      nodes {
        name
      }
    }
  }
}`

const queryRepoExists = `
query ($username: String!, $name: String!) {
  repository(owner: $username, name: $name) {
    name
  }
}`

const queryRepoInfo = `
query ($username: String!, $name: String!) {
  repository(owner: $username, name: $name) {
    name
    description
    createdAt
    pushedAt
    diskUsage
    licenseInfo {
      name
    }
    primaryLanguage {
      name
    }
  }
}`

const queryRepos = `
query ($username: String!, $limit: Int!) {
  user(login: $username) {
    repositories(first: $limit, ownerAffiliations: OWNER, orderBy: {field: NAME, direction: ASC}) {
      nodes {
        name
        description
        createdAt
        pushedAt
        diskUsage
      }
    }
  }
}`

const queryForks = `
query ($username: String!, $limit: Int!) {
  user(login: $username) {
    repositories(first: $limit, ownerAffiliations: OWNER, isFork: true, orderBy: {field: NAME, direction: ASC}) {
      nodes {
        name
        diskUsage
        createdAt
        pushedAt
        parent {
          nameWithOwner
        }
      }
    }
  }
}`
